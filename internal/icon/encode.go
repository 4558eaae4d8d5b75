package icon

import (
	"bytes"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodeICO re-encodes img as an .ico holding a single size×size entry and
// returns the file bytes. The length depends on the codec's compression.
func EncodeICO(img image.Image, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrInvalidSize, b.Dx(), b.Dy(), size, size)
	}
	buf := &bytes.Buffer{}
	if err := ico.Encode(buf, img); err != nil {
		return nil, &CodecError{Op: "encode icon", Err: err}
	}
	return buf.Bytes(), nil
}
