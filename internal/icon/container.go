// Package icon reads multi-resolution icon containers, picks the frame that
// best matches the target size and turns it into a square RGBA image or a
// re-encoded single-entry ICO.
package icon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultSize is the edge length of every normalized image.
	DefaultSize = 32

	dirHeaderSize = 6
	dirEntrySize  = 16
	typeIcon      = 1
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Dir is the ICONDIR header at the start of every .ico file.
type Dir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// DirEntry is one ICONDIRENTRY record.
type DirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Entry couples a directory record with the raw image bytes it points at.
type Entry struct {
	Meta DirEntry
	Data []byte
}

// Frame is one embedded image of a container. Index is its position in
// container order, which is what ties are broken on.
type Frame struct {
	Index  int
	Width  int
	Height int
}

// Area returns Width*Height.
func (f Frame) Area() int { return f.Width * f.Height }

func (f Frame) String() string {
	return fmt.Sprintf("#%d %dx%d", f.Index, f.Width, f.Height)
}

// Container is a decoded-on-demand set of frames. ICO files yield one frame
// per directory entry; any other registered raster format yields exactly one.
type Container struct {
	frames  []Frame
	entries []Entry
	raw     []byte
}

// Open reads path fully and parses it. The file handle is released before
// Open returns, on every path.
func Open(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a Container from an in-memory file.
func Parse(data []byte) (*Container, error) {
	if isICO(data) {
		entries, err := ParseICO(data)
		if err != nil {
			return nil, err
		}
		c := &Container{entries: entries, frames: make([]Frame, 0, len(entries))}
		for i, e := range entries {
			w, h, err := entrySize(e)
			if err != nil {
				return nil, &CodecError{Op: fmt.Sprintf("read frame %d", i), Err: err}
			}
			c.frames = append(c.frames, Frame{Index: i, Width: w, Height: h})
		}
		return c, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &CodecError{Op: "read image", Err: err}
	}
	return &Container{
		raw:    data,
		frames: []Frame{{Index: 0, Width: cfg.Width, Height: cfg.Height}},
	}, nil
}

// Frames returns the frames in container order.
func (c *Container) Frames() []Frame {
	out := make([]Frame, len(c.frames))
	copy(out, c.frames)
	return out
}

// Len reports the number of frames.
func (c *Container) Len() int { return len(c.frames) }

// Decode returns the pixels of the frame at index.
func (c *Container) Decode(index int) (image.Image, error) {
	if index < 0 || index >= len(c.frames) {
		return nil, fmt.Errorf("icon: frame %d out of range [0,%d)", index, len(c.frames))
	}
	if c.entries == nil {
		img, _, err := image.Decode(bytes.NewReader(c.raw))
		if err != nil {
			return nil, &CodecError{Op: "decode image", Err: err}
		}
		return img, nil
	}
	img, err := decodeEntry(c.entries[index])
	if err != nil {
		return nil, &CodecError{Op: fmt.Sprintf("decode frame %d", index), Err: err}
	}
	return img, nil
}

// ParseICO splits an .ico file into its directory entries and image data.
func ParseICO(data []byte) ([]Entry, error) {
	r := bytes.NewReader(data)
	var hdr Dir
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, &CodecError{Op: "read icon header", Err: err}
	}
	if hdr.Reserved != 0 || hdr.Type != typeIcon || hdr.Count == 0 {
		return nil, &CodecError{Op: "read icon header", Err: fmt.Errorf("invalid icon file")}
	}
	entries := make([]Entry, hdr.Count)
	for i := range entries {
		var e DirEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, &CodecError{Op: fmt.Sprintf("read entry %d", i), Err: err}
		}
		end := uint64(e.ImageOffset) + uint64(e.BytesInRes)
		if e.BytesInRes == 0 || end > uint64(len(data)) {
			return nil, &CodecError{Op: fmt.Sprintf("read entry %d", i), Err: fmt.Errorf("icon data out of range")}
		}
		chunk := make([]byte, e.BytesInRes)
		copy(chunk, data[e.ImageOffset:end])
		entries[i] = Entry{Meta: e, Data: chunk}
	}
	return entries, nil
}

func isICO(data []byte) bool {
	if len(data) < dirHeaderSize {
		return false
	}
	return binary.LittleEndian.Uint16(data[0:]) == 0 &&
		binary.LittleEndian.Uint16(data[2:]) == typeIcon &&
		binary.LittleEndian.Uint16(data[4:]) > 0
}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngMagic)
}

// entrySize prefers the embedded PNG header; BMP entries fall back to the
// directory record, where 0 stands for 256.
func entrySize(e Entry) (int, int, error) {
	if isPNG(e.Data) {
		cfg, err := png.DecodeConfig(bytes.NewReader(e.Data))
		if err != nil {
			return 0, 0, err
		}
		return cfg.Width, cfg.Height, nil
	}
	w, h := int(e.Meta.Width), int(e.Meta.Height)
	if w == 0 {
		w = 256
	}
	if h == 0 {
		h = 256
	}
	return w, h, nil
}

func decodeEntry(e Entry) (image.Image, error) {
	if isPNG(e.Data) {
		return png.Decode(bytes.NewReader(e.Data))
	}
	// DIB payloads only make sense inside an icon directory, so wrap the
	// entry as a one-image .ico for the codec.
	return ico.Decode(bytes.NewReader(singleEntryICO(e)))
}

func singleEntryICO(e Entry) []byte {
	buf := &bytes.Buffer{}
	meta := e.Meta
	meta.BytesInRes = uint32(len(e.Data))
	meta.ImageOffset = dirHeaderSize + dirEntrySize
	// bytes.Buffer writes cannot fail.
	_ = binary.Write(buf, binary.LittleEndian, Dir{Type: typeIcon, Count: 1})
	_ = binary.Write(buf, binary.LittleEndian, meta)
	buf.Write(e.Data)
	return buf.Bytes()
}
