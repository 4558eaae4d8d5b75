package icon

import (
	"image"

	"github.com/KononK/resize"
	xdraw "golang.org/x/image/draw"
)

// Normalize decodes frame f of c and returns it as a size×size NRGBA image.
func Normalize(c *Container, f Frame, size int) (*image.NRGBA, error) {
	img, err := c.Decode(f.Index)
	if err != nil {
		return nil, err
	}
	return NormalizeImage(img, size), nil
}

// NormalizeImage converts img to non-premultiplied RGBA and, unless it is
// already size×size, resamples it with a Lanczos3 filter. The result always
// has its origin at (0,0).
func NormalizeImage(img image.Image, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSize
	}
	rgba := toNRGBA(img)
	b := rgba.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return rgba
	}
	return toNRGBA(resize.Resize(uint(size), uint(size), rgba, resize.Lanczos3))
}

// toNRGBA returns img unchanged when it already is a zero-origin NRGBA and
// otherwise redraws it into one. Missing channels come out opaque.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
