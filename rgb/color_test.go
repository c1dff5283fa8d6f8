package rgb

import (
	"image/color"
	"testing"
)

func TestSet(t *testing.T) {
	var c Color
	c.Set(1, 2, 3)
	if c != New(1, 2, 3) {
		t.Fatalf("Set = %+v", c)
	}
	if c.Components() != [3]uint8{1, 2, 3} {
		t.Fatalf("Components = %v", c.Components())
	}
}

func TestImplementsColor(t *testing.T) {
	var _ color.Color = Color{}

	got := color.NRGBAModel.Convert(New(10, 128, 255)).(color.NRGBA)
	want := color.NRGBA{10, 128, 255, 255}
	if got != want {
		t.Fatalf("NRGBA = %v, want %v", got, want)
	}
}

func TestVecRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, New(12, 200, 77)} {
		if got := FromVec(c.Vec()); got != c {
			t.Fatalf("FromVec(Vec(%v)) = %v", c, got)
		}
	}
	if got := FromVec([3]float64{-1, 0.5, 2}); got != New(0, 128, 255) {
		t.Fatalf("FromVec clamped = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Fatalf("Lerp(0) = %v", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Fatalf("Lerp(1) = %v", got)
	}
	if got := Black.Lerp(White, 0.5); got != New(128, 128, 128) {
		t.Fatalf("Lerp(0.5) = %v", got)
	}
}

func TestHex(t *testing.T) {
	c := New(0x12, 0xab, 0xff)
	if c.Hex() != "#12abff" {
		t.Fatalf("Hex = %s", c.Hex())
	}
	for _, s := range []string{"#12abff", "12ABFF"} {
		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		if got != c {
			t.Fatalf("ParseHex(%q) = %v", s, got)
		}
	}
	for _, s := range []string{"", "#123", "zzzzzz", " 1ff00", "1ff00 ", "+1ff00", "#-1ff00"} {
		if _, err := ParseHex(s); err == nil {
			t.Fatalf("ParseHex(%q) succeeded", s)
		}
	}
}
