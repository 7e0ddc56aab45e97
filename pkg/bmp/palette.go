package bmp

import (
	"fmt"
	"image/color"
	"io"
)

// readPalette reads the color table of an indexed bitmap. It lives
// directly after the info header; each entry is 4 bytes in B,G,R,reserved
// order. A zero declared color count means the full 2^bpp table is
// present. Only called for bits-per-pixel <= 8.
func readPalette(r io.ReadSeeker, h *infoHeader) ([]color.RGBA, error) {
	count := int(h.paletteColors)
	if count == 0 {
		count = 1 << h.bitsPerPixel
	}

	offset := int64(fileHeaderSize) + int64(h.headerSize)
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("bmp: seek palette: %w", err)
	}
	if offset+int64(count)*4 > end {
		return nil, fmt.Errorf("%w: %d entries past end of file", ErrInvalidPalette, count)
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("bmp: seek palette: %w", err)
	}

	buf := make([]byte, count*4)
	if err := readFull(r, buf, "palette"); err != nil {
		return nil, err
	}

	palette := make([]color.RGBA, count)
	for i := range palette {
		palette[i] = color.RGBA{
			R: buf[i*4+2],
			G: buf[i*4+1],
			B: buf[i*4+0],
			A: 0xFF,
		}
	}
	return palette, nil
}
