package postprocess

import (
	"image"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/image/draw"
)

// Downsample reduces img to w x h with premultiplied-alpha CatmullRom
// filtering, which prevents dark halos at transparent edges. Images that are
// already no larger than the target are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	premul := Premultiply(img)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	return Unpremultiply(dst)
}

// Premultiply converts straight alpha to premultiplied alpha. Each row is
// split into planar channels and scaled by its alpha row in one block
// multiply per channel.
func Premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	w := b.Dx()
	out := image.NewRGBA(b)

	alpha := make([]float64, w)
	ch := [3][]float64{make([]float64, w), make([]float64, w), make([]float64, w)}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := img.PixOffset(b.Min.X, y)
		di := out.PixOffset(b.Min.X, y)
		for x := 0; x < w; x++ {
			p := img.Pix[si+x*4 : si+x*4+4]
			ch[0][x], ch[1][x], ch[2][x] = float64(p[0]), float64(p[1]), float64(p[2])
			alpha[x] = float64(p[3]) / 255.0
		}
		for k := range ch {
			vecmath.MulBlockInPlace(ch[k], alpha)
		}
		for x := 0; x < w; x++ {
			q := out.Pix[di+x*4 : di+x*4+4]
			q[0] = clamp8(ch[0][x])
			q[1] = clamp8(ch[1][x])
			q[2] = clamp8(ch[2][x])
			q[3] = img.Pix[si+x*4+3]
		}
	}
	return out
}

// Unpremultiply converts premultiplied alpha back to straight alpha. Pixels
// with alpha <= 1 are left black.
func Unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	result := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(img.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(img.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(img.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(img.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = img.Pix[si+3]
		}
	}
	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
