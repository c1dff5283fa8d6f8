// Package rgb holds a 24-bit color value type.
package rgb

import (
	"encoding/hex"
	"fmt"

	"idlib/mathutil"
)

// Color has three 8-bit components where 0 is the minimum and 255 the
// maximum intensity. It implements image/color.Color as fully opaque.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Set assigns all three components.
func (c *Color) Set(r, g, b uint8) {
	c.R, c.G, c.B = r, g, b
}

func (c Color) Components() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Vec returns the components scaled to [0, 1].
func (c Color) Vec() mathutil.Vec3[float64] {
	return mathutil.Vec3[float64]{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// FromVec converts components in [0, 1] to a Color, clamping out-of-range values.
func FromVec(v mathutil.Vec3[float64]) Color {
	return Color{to8(v[0]), to8(v[1]), to8(v[2])}
}

// Lerp blends from c to d; t is clamped to [0, 1].
func (c Color) Lerp(d Color, t float64) Color {
	return FromVec(c.Vec().Lerp(d.Vec(), t))
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or rrggbb.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("rgb: parse %q: want 6 hex digits", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("rgb: parse %q: %w", s, err)
	}
	return Color{b[0], b[1], b[2]}, nil
}

func to8(v float64) uint8 {
	return uint8(mathutil.Clamp01(v)*255 + 0.5)
}
