package bmp

import (
	"image"
	"image/color"
)

// Image is the sole artifact a decode produces: a flat, row-major grid of
// RGBA8 pixels with row 0 at the bottom of the image (row index grows
// upward, column index grows rightward). It owns its pixel storage and
// keeps no reference to the source bytes.
type Image struct {
	Width  int32
	Height int32
	Pix    []uint8 // RGBA, 4 bytes per pixel, len = Width*Height*4
}

func newImage(width, height int32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, int(width)*int(height)*4),
	}
}

// At returns the pixel at column x of row y, with row 0 at the bottom.
func (img *Image) At(x, y int) color.RGBA {
	i := (y*int(img.Width) + x) * 4
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

func (img *Image) set(x, y int, c color.RGBA) {
	i := (y*int(img.Width) + x) * 4
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// ToRGBA converts the image to the standard library's top-down RGBA
// layout, flipping the rows. Pixel bytes are copied verbatim.
func (img *Image) ToRGBA() *image.RGBA {
	w, h := int(img.Width), int(img.Height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := img.Pix[y*w*4 : (y+1)*w*4]
		copy(dst.Pix[(h-1-y)*dst.Stride:], src)
	}
	return dst
}
