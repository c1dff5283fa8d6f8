package raster

import (
	"math"

	"idlib/mathutil"
)

type Vec3 = mathutil.Vec3[float64]

// LightConfig holds precomputed lighting parameters. Directions point from
// the surface towards the light, in world space.
type LightConfig struct {
	LightDir Vec3
	RimDir   Vec3
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	Exposure float64
	InvGamma float64
}

func mustNormalize(v Vec3) Vec3 {
	n, _ := v.Normalize()
	return n
}

// DefaultLightConfig returns a key light from the upper right front and a
// dimmer rim light from behind.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mustNormalize(Vec3{180, 260, 140}),
		RimDir:   mustNormalize(Vec3{-160, 130, -210}),
		Ambient:  0.35,
		Hemi:     0.30,
		Direct:   0.90,
		Rim:      0.30,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
// Faces are lit from both sides.
func (lc *LightConfig) ComputeShade(normal Vec3) float64 {
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math.Abs(normal[1]))*0.5 + 0.5

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim
}

// FaceNormal returns the unit normal of the triangle a, b, c, or false for a
// degenerate triangle.
func FaceNormal(a, b, c mathutil.Point3[float64]) (Vec3, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.SquaredLength() < 1e-16 {
		return Vec3{}, false
	}
	return n.Normalize()
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// shadeChannel lights one sRGB channel and re-encodes it.
func (lc *LightConfig) shadeChannel(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
