package bmp

import (
	"fmt"
	"image/color"
	"io"
)

// rowStride returns the byte length of one scanline. Rows are padded to a
// 4-byte boundary; the padding is skipped, never interpreted as pixels.
func rowStride(width, bitsPerPixel int) int {
	return (bitsPerPixel*width + 31) / 32 * 4
}

// rowOrder returns the magnitude of the height together with the output
// row index of the first on-disk row and the per-row step. Positive
// heights store the bottom row first, which is already the output order;
// negative heights store the top row first, so on-disk rows are written
// from the last output row backward.
func rowOrder(height int32) (rows, y0, step int) {
	if height < 0 {
		rows = int(-height)
		return rows, rows - 1, -1
	}
	return int(height), 0, +1
}

// decodeIndexed unpacks the scanlines of a 1, 2, 4 or 8 bit-per-pixel
// bitmap into img via palette lookup. Indices are packed most significant
// bits first: the leftmost pixel of a byte occupies the high bits.
func decodeIndexed(r io.Reader, h *infoHeader, palette []color.RGBA, img *Image) error {
	bpp := int(h.bitsPerPixel)
	width := int(img.Width)
	row := make([]byte, rowStride(width, bpp))
	rows, y, step := rowOrder(h.height)

	for i := 0; i < rows; i, y = i+1, y+step {
		if err := readFull(r, row, fmt.Sprintf("pixel row %d", i)); err != nil {
			return err
		}
		byteIdx, bit := 0, 8-bpp
		for x := 0; x < width; x++ {
			idx := (row[byteIdx] >> bit) & (1<<bpp - 1)
			if int(idx) < len(palette) {
				img.set(x, y, palette[idx])
			}
			if bit == 0 {
				byteIdx, bit = byteIdx+1, 8-bpp
			} else {
				bit -= bpp
			}
		}
	}
	return nil
}

// decodeDirect unpacks the scanlines of a 16, 24 or 32 bit-per-pixel
// bitmap into img. Each pixel is a little-endian packed integer; channel
// values are extracted by masking and shifting. An absent alpha mask
// forces the alpha contribution to zero.
func decodeDirect(r io.Reader, h *infoHeader, masks pixelMasks, img *Image) error {
	bpp := int(h.bitsPerPixel)
	pixelSize := bpp / 8
	width := int(img.Width)
	row := make([]byte, rowStride(width, bpp))
	rows, y, step := rowOrder(h.height)

	for i := 0; i < rows; i, y = i+1, y+step {
		if err := readFull(r, row, fmt.Sprintf("pixel row %d", i)); err != nil {
			return err
		}
		for x := 0; x < width; x++ {
			var packed uint32
			for k := 0; k < pixelSize; k++ {
				packed |= uint32(row[x*pixelSize+k]) << (8 * k)
			}
			c := color.RGBA{
				R: masks.red.extract(packed),
				G: masks.green.extract(packed),
				B: masks.blue.extract(packed),
			}
			if masks.alpha.present() {
				c.A = masks.alpha.extract(packed)
			}
			img.set(x, y, c)
		}
	}
	return nil
}
