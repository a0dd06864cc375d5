package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle {
	side := im.Matrix.Size() * im.scale()
	return image.Rect(0, 0, side, side)
}

// At implements image.Image.
func (im *Image) At(x, y int) color.Color {
	scale := im.scale()
	c := im.Matrix[y/scale][x/scale]
	rgb := im.Light
	if c {
		rgb = im.Dark
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}
}

func (im *Image) scale() int {
	if im.Scale <= 0 {
		return 1
	}
	return im.Scale
}

// EncodePNG writes im as a PNG image to w, via the standard library
// encoder; module placement and color policy are this package's only
// job, so reusing image/png rather than a hand-rolled encoder keeps
// this adapter small.
func EncodePNG(w io.Writer, im *Image) error {
	return png.Encode(w, im)
}
