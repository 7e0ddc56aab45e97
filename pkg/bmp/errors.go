package bmp

import "errors"

var (
	// ErrBadMagic is returned when the first two bytes of the source are
	// not the bitmap file signature.
	ErrBadMagic = errors.New("bmp: bad file magic")

	// ErrUnsupportedHeaderVersion is returned when the declared info
	// header size is not one of the recognized versions.
	ErrUnsupportedHeaderVersion = errors.New("bmp: unsupported info header version")

	// ErrUnsupportedCompression is returned for any compression mode
	// other than BI_RGB and BI_BITFIELDS.
	ErrUnsupportedCompression = errors.New("bmp: unsupported compression mode")

	// ErrUnsupportedColorSpace is returned when a V4/V5 header declares
	// a color space other than sRGB.
	ErrUnsupportedColorSpace = errors.New("bmp: unsupported color space")

	// ErrUnsupportedBitDepth is returned for a bits-per-pixel value
	// outside {1, 2, 4, 8, 16, 24, 32}.
	ErrUnsupportedBitDepth = errors.New("bmp: unsupported bit depth")

	// ErrInvalidPalette is returned when the declared palette size would
	// read past the end of the file.
	ErrInvalidPalette = errors.New("bmp: invalid color palette")
)
