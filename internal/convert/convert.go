// Package convert runs the icon pipelines end to end: open the source, pick
// and normalize a frame, serialize it and write the generated header.
package convert

import (
	"fmt"
	"image"

	humanize "github.com/dustin/go-humanize"

	"github.com/edward-ap/iconheader/internal/cheader"
	"github.com/edward-ap/iconheader/internal/config"
	"github.com/edward-ap/iconheader/internal/icon"
)

// Converter holds the settings shared by both pipelines.
type Converter struct {
	cfg *config.Config
	log Logger
}

// New builds a Converter. A nil cfg means the pixel-array defaults and a nil
// logger means the standard log package.
func New(cfg *config.Config, logger Logger) *Converter {
	if cfg == nil {
		cfg = config.Default(config.ModePixels)
	}
	if logger == nil {
		logger = stdLogger{}
	}
	return &Converter{cfg: cfg, log: logger}
}

// Config returns the settings in use.
func (c *Converter) Config() config.Config { return *c.cfg }

// PixelArray writes the normalized icon of input to output as a flat RGBA
// array with width and height constants.
func (c *Converter) PixelArray(input, output string) error {
	img, err := c.normalized(input)
	if err != nil {
		return err
	}
	pix := icon.Pixels(img)
	c.tracef("flattened %d pixels into %d bytes", len(pix)/4, len(pix))
	return c.write(output, cheader.PixelHeader(input, c.cfg.VarName, pix, c.cfg.Size))
}

// ICOArray writes the normalized icon of input to output as the bytes of a
// single-entry .ico with a length constant.
func (c *Converter) ICOArray(input, output string) error {
	img, err := c.normalized(input)
	if err != nil {
		return err
	}
	data, err := icon.EncodeICO(img, c.cfg.Size)
	if err != nil {
		return err
	}
	c.tracef("re-encoded %dx%d icon: %s", c.cfg.Size, c.cfg.Size, humanize.Bytes(uint64(len(data))))
	return c.write(output, cheader.ICOHeader(input, c.cfg.VarName, data, c.cfg.Size))
}

func (c *Converter) normalized(input string) (*image.NRGBA, error) {
	container, err := icon.Open(input)
	if err != nil {
		return nil, err
	}
	frames := container.Frames()
	for _, f := range frames {
		c.tracef("%s: frame %v", input, f)
	}
	f, err := icon.Select(container, c.cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	c.tracef("%s: selected frame %v of %d", input, f, len(frames))
	if f.Width != c.cfg.Size || f.Height != c.cfg.Size {
		c.tracef("%s: resampling %dx%d to %dx%d", input, f.Width, f.Height, c.cfg.Size, c.cfg.Size)
	}
	return icon.Normalize(container, f, c.cfg.Size)
}

// write renders h completely before touching path, so a failed run never
// leaves a partial header behind.
func (c *Converter) write(path string, h cheader.Header) error {
	n, err := cheader.WriteFile(path, h)
	if err != nil {
		return err
	}
	c.log.Printf("wrote %s (%s, array %s[%d])", path, humanize.Bytes(uint64(n)), h.VarName, len(h.Data))
	return nil
}

func (c *Converter) tracef(format string, args ...any) {
	if isTraceLoggingEnabled() {
		c.log.Printf(format, args...)
	}
}

// Bundle writes the scripts listed in m into one header.
func Bundle(m *config.Manifest, logger Logger) error {
	if logger == nil {
		logger = stdLogger{}
	}
	if isTraceLoggingEnabled() {
		for i, f := range m.Files {
			logger.Printf("bundling %d: %s", i+1, f)
		}
	}
	n, err := cheader.WriteBundle(m.Output, m.Files, cheader.BundleOptions{Guard: m.Guard, Prefix: m.Prefix})
	if err != nil {
		return err
	}
	logger.Printf("wrote %s (%s, %d scripts)", m.Output, humanize.Bytes(uint64(n)), len(m.Files))
	return nil
}
