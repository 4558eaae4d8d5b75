package icon

import "image"

// Pixels flattens img into row-major R,G,B,A bytes: row 0 left to right,
// then row 1, and so on. A 32×32 image yields 4096 bytes.
func Pixels(img image.Image) []byte {
	n := toNRGBA(img)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		off := y * n.Stride
		out = append(out, n.Pix[off:off+w*4]...)
	}
	return out
}
