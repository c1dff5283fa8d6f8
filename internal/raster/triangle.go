package raster

import (
	"image"
	"math"

	"idlib/mathutil"
	"idlib/rgb"
)

// ScreenVertex is a vertex after projection and viewport mapping. Z is the
// depth value stored in the z-buffer (larger is nearer) and InvW is 1/w of
// the clip-space position, used for perspective-correct texture coordinates.
type ScreenVertex struct {
	X, Y, Z float64
	InvW    float64
}

// RasterizeTriangle fills one triangle with z-buffering, sRGB-correct
// lighting and ACES tone mapping. The face is flat shaded with the given
// shade value. When tex is nil the base color is used for every pixel.
//
// This is the hot path; the pixel loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	v [3]ScreenVertex,
	uv [3]mathutil.Vec2[float64],
	tex *image.NRGBA,
	base rgb.Color,
	shade float64,
	lc *LightConfig,
) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	// Bounding box, clamped to the buffer
	minX := max(int(math.Floor(min(x0, x1, x2))), 0)
	maxX := min(int(math.Ceil(max(x0, x1, x2))), fb.Width-1)
	minY := max(int(math.Floor(min(y0, y1, y2))), 0)
	maxY := min(int(math.Ceil(max(y0, y1, y2))), fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Texture coordinates are interpolated as uv/w and 1/w.
	q0, q1, q2 := v[0].InvW, v[1].InvW, v[2].InvW
	uq0, uq1, uq2 := uv[0].Scale(q0), uv[1].Scale(q1), uv[2].Scale(q2)

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := base.R, base.G, base.B, uint8(255)
			if tex != nil {
				q := w0*q0 + w1*q1 + w2*q2
				t := mathutil.Vec2[float64]{
					(w0*uq0[0] + w1*uq1[0] + w2*uq2[0]) / q,
					(w0*uq0[1] + w1*uq1[1] + w2*uq2[1]) / q,
				}
				cr, cg, cb, ca = SampleTexture(tex, t)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = lc.shadeChannel(cr, shade)
			fb.Color[pxIdx+1] = lc.shadeChannel(cg, shade)
			fb.Color[pxIdx+2] = lc.shadeChannel(cb, shade)
			fb.Color[pxIdx+3] = ca
		}
	}
}
