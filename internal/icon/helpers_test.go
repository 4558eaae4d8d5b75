package icon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// solid returns a w×h opaque image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

// buildICO assembles an .ico whose entries are PNG payloads, in the given
// order.
func buildICO(t *testing.T, imgs ...image.Image) []byte {
	t.Helper()
	payloads := make([][]byte, len(imgs))
	for i, img := range imgs {
		payloads[i] = encodePNG(t, img)
	}
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, Dir{Type: typeIcon, Count: uint16(len(imgs))})
	offset := dirHeaderSize + dirEntrySize*len(imgs)
	for i, img := range imgs {
		b := img.Bounds()
		binary.Write(buf, binary.LittleEndian, DirEntry{
			Width:       uint8(b.Dx()),
			Height:      uint8(b.Dy()),
			Planes:      1,
			BitCount:    32,
			BytesInRes:  uint32(len(payloads[i])),
			ImageOffset: uint32(offset),
		})
		offset += len(payloads[i])
	}
	for _, p := range payloads {
		buf.Write(p)
	}
	return buf.Bytes()
}

func squares(sizes ...int) []image.Image {
	out := make([]image.Image, len(sizes))
	for i, s := range sizes {
		out[i] = solid(s, s, color.NRGBA{R: uint8(i * 40), G: 0x80, B: 0x20, A: 0xFF})
	}
	return out
}
