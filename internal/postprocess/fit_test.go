package postprocess

import (
	"image"
	"image/color"
	"testing"

	"idlib/rgb"
)

func TestAlphaBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if r := AlphaBounds(img); !r.Empty() {
		t.Fatalf("AlphaBounds(empty) = %v", r)
	}
	img.SetNRGBA(2, 3, color.NRGBA{A: 255})
	img.SetNRGBA(6, 4, color.NRGBA{A: 1})
	if r := AlphaBounds(img); r != image.Rect(2, 3, 7, 5) {
		t.Errorf("AlphaBounds = %v, want (2,3)-(7,5)", r)
	}
}

func TestFitCenters(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	out := Fit(img, 20, 0.5)
	if b := out.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("bounds = %v", b)
	}
	// 8x4 scaled to 10x5, centered at (5,7)-(15,12).
	r := AlphaBounds(out)
	if r.Min.X < 4 || r.Max.X > 16 || r.Min.Y < 6 || r.Max.Y > 13 {
		t.Errorf("visible bounds = %v, want about (5,7)-(15,12)", r)
	}
	if c := out.NRGBAAt(10, 9); c.A < 250 || c.R < 250 {
		t.Errorf("center = %v, want opaque red", c)
	}
	if c := out.NRGBAAt(1, 1); c.A != 0 {
		t.Errorf("corner = %v, want transparent", c)
	}
}

func TestFitEmpty(t *testing.T) {
	out := Fit(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 8, 0.9)
	if out.Bounds().Dx() != 8 || !AlphaBounds(out).Empty() {
		t.Errorf("Fit(empty) = %v with visible pixels", out.Bounds())
	}
}

func TestFlatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	out := Flatten(img, rgb.New(200, 100, 0))
	if c := out.NRGBAAt(0, 0); c != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("opaque pixel = %v", c)
	}
	if c := out.NRGBAAt(1, 0); c != (color.NRGBA{200, 100, 0, 255}) {
		t.Errorf("background pixel = %v", c)
	}
}
