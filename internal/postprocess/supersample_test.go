package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPremultiply(t *testing.T) {
	img := solid(3, 1, color.NRGBA{200, 100, 50, 128})
	img.SetNRGBA(2, 0, color.NRGBA{255, 255, 255, 0})

	p := Premultiply(img)
	if got := p.RGBAAt(0, 0); got != (color.RGBA{100, 50, 25, 128}) {
		t.Errorf("premultiplied = %v, want {100 50 25 128}", got)
	}
	if got := p.RGBAAt(2, 0); got != (color.RGBA{}) {
		t.Errorf("transparent pixel = %v, want zero", got)
	}
}

func TestUnpremultiplyOpaqueRoundTrip(t *testing.T) {
	img := solid(2, 2, color.NRGBA{12, 34, 56, 255})
	got := Unpremultiply(Premultiply(img))
	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, got.Pix[i], img.Pix[i])
		}
	}
}

func TestDownsample(t *testing.T) {
	img := solid(8, 8, color.NRGBA{10, 200, 30, 255})
	out := Downsample(img, 4, 2)
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, want 4x2", b)
	}
	want := color.NRGBA{10, 200, 30, 255}
	got := out.NRGBAAt(1, 1)
	if near(got.R, want.R) && near(got.G, want.G) && near(got.B, want.B) && near(got.A, want.A) {
		return
	}
	t.Errorf("pixel = %v, want %v", got, want)
}

func near(a, b uint8) bool {
	return a-b <= 1 || b-a <= 1
}

func TestDownsampleNoHalo(t *testing.T) {
	// Opaque red next to transparent white must not bleed white into red.
	img := solid(8, 8, color.NRGBA{255, 255, 255, 0})
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	out := Downsample(img, 4, 4)
	for x := 0; x < 4; x++ {
		c := out.NRGBAAt(x, 2)
		if c.A > 1 && (c.G > 2 || c.B > 2) {
			t.Errorf("pixel (%d,2) = %v, want pure red", x, c)
		}
	}
}

func TestDownsampleSmallerIsNoop(t *testing.T) {
	img := solid(2, 2, color.NRGBA{1, 2, 3, 4})
	if out := Downsample(img, 4, 4); out != img {
		t.Error("Downsample of a smaller image returned a copy")
	}
}
