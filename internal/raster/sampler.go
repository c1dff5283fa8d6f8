package raster

import (
	"image"
	"math"

	"idlib/mathutil"
)

// SampleTexture performs bilinear filtering with UV wrapping. v = 0 is the
// bottom row of the texture. Accesses tex.Pix directly for performance.
func SampleTexture(tex *image.NRGBA, uv mathutil.Vec2[float64]) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u := uv[0] - math.Floor(uv[0])
	v := 1 - (uv[1] - math.Floor(uv[1]))

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]uint8
	for k := 0; k < 4; k++ {
		f := float64(pix[i00+k])*w00 + float64(pix[i10+k])*w10 + float64(pix[i01+k])*w01 + float64(pix[i11+k])*w11
		out[k] = uint8(f + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}
