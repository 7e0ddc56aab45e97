// Package bmp decodes Windows bitmap images into flat RGBA pixel grids.
//
// The decoder handles the five layered revisions of the DIB info header
// (BITMAPINFOHEADER and the V2, V3, V4, V5 extensions), indexed formats
// at 1, 2, 4 and 8 bits per pixel, and the mask-based direct formats at
// 16, 24 and 32 bits per pixel. Only the BI_RGB and BI_BITFIELDS
// compression modes are supported; RLE and embedded JPEG/PNG streams are
// rejected, as are OS/2 core headers and non-sRGB V4/V5 color profiles.
//
// A decode is a pure function from a seekable byte source to an Image.
// Any validation failure aborts the whole pipeline; no partial Image is
// ever returned. Concurrent decodes of different sources are independent
// and need no locking.
package bmp

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
)

// Decode reads a BMP image from r, which must allow seeking: header
// parsing performs ordered random-access reads before the sequential
// pixel pass.
func Decode(r io.ReadSeeker) (*Image, error) {
	fh, err := readFileHeader(r)
	if err != nil {
		return nil, err
	}
	ih, err := readInfoHeader(r)
	if err != nil {
		return nil, err
	}

	switch ih.bitsPerPixel {
	case 1, 2, 4, 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, ih.bitsPerPixel)
	}

	width := ih.width
	height := ih.height
	if height < 0 {
		height = -height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bmp: invalid dimensions %dx%d", ih.width, ih.height)
	}

	var palette []color.RGBA
	var masks pixelMasks
	if ih.bitsPerPixel <= 8 {
		if palette, err = readPalette(r, &ih); err != nil {
			return nil, err
		}
	} else {
		if masks, err = resolveMasks(r, &ih); err != nil {
			return nil, err
		}
	}

	if _, err := r.Seek(int64(fh.pixelOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("bmp: seek pixel data: %w", err)
	}

	img := newImage(width, height)
	if ih.bitsPerPixel <= 8 {
		err = decodeIndexed(r, &ih, palette, img)
	} else {
		err = decodeDirect(r, &ih, masks, img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeBytes decodes a BMP image held entirely in memory.
func DecodeBytes(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the BMP image stored at path.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bmp: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
