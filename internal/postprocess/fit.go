package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"idlib/rgb"
)

// AlphaBounds returns the bounding box of the non-transparent pixels, or an
// empty rectangle when every pixel is transparent.
func AlphaBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	var r image.Rectangle
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[off+(x-b.Min.X)*4+3] == 0 {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

// Fit crops img to its visible pixels and scales the crop so that its larger
// side spans fillRatio of a size x size canvas, centered. A fully transparent
// image yields an empty canvas.
func Fit(img *image.NRGBA, size int, fillRatio float64) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	crop := AlphaBounds(img)
	if crop.Empty() {
		return canvas
	}
	srcW, srcH := crop.Dx(), crop.Dy()

	scale := float64(size) * fillRatio / float64(max(srcW, srcH))
	newW := max(int(float64(srcW)*scale+0.5), 1)
	newH := max(int(float64(srcH)*scale+0.5), 1)

	premul := Premultiply(img.SubImage(crop).(*image.NRGBA))
	scaled := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	offX := (size - newW) / 2
	offY := (size - newH) / 2
	draw.Draw(canvas, image.Rect(offX, offY, offX+newW, offY+newH), Unpremultiply(scaled), image.Point{}, draw.Src)
	return canvas
}

// Flatten composites img over an opaque background color.
func Flatten(img *image.NRGBA, bg rgb.Color) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Over)
	return out
}
