package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestPixelsRasterOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 0xFF})
		}
	}
	out := Pixels(img)
	if len(out) != 4096 {
		t.Fatalf("len = %d, want 4096", len(out))
	}
	for i := 0; i < 1024; i++ {
		x, y := i%32, i/32
		px := out[i*4 : i*4+4]
		if px[0] != uint8(x) || px[1] != uint8(y) || px[2] != uint8(x^y) || px[3] != 0xFF {
			t.Fatalf("pixel %d (%d,%d) = %v", i, x, y, px)
		}
	}
}

func TestPixelsKeepsStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 64})
	out := Pixels(img)
	if got := out[4:8]; got[0] != 255 || got[1] != 128 || got[2] != 0 || got[3] != 64 {
		t.Fatalf("pixel (1,0) = %v", got)
	}
}

func TestPixelsSubImage(t *testing.T) {
	big := solid(64, 64, color.NRGBA{R: 9, A: 0xFF})
	sub := big.SubImage(image.Rect(16, 16, 48, 48))
	if got := len(Pixels(sub)); got != 4096 {
		t.Fatalf("len = %d, want 4096", got)
	}
}
