package bmp

import (
	"fmt"
	"io"
)

const (
	fileHeaderSize = 14
	fileMagic      = "BM"
)

// Recognized info header sizes. Each version is a strict superset of the
// previous one, extending it at fixed offsets.
const (
	infoHeaderSize   = 40  // BITMAPINFOHEADER
	infoHeaderV2Size = 52  // BITMAPV2INFOHEADER, adds RGB masks
	infoHeaderV3Size = 56  // BITMAPV3INFOHEADER, adds alpha mask
	infoHeaderV4Size = 108 // BITMAPV4HEADER, adds color space
	infoHeaderV5Size = 124 // BITMAPV5HEADER

	// OS/2 BITMAPCOREHEADER. Detected so the error message can name it,
	// but never decoded.
	coreHeaderSize = 12
)

// Compression modes defined by the format. Only compressionRGB and
// compressionBitfields are accepted; everything else is a hard rejection.
const (
	compressionRGB       = 0
	compressionRLE8      = 1
	compressionRLE4      = 2
	compressionBitfields = 3
)

// colorSpaceSRGB is the LCS_sRGB magic a V4/V5 header must carry.
const colorSpaceSRGB = 0x73524742 // "sRGB"

// fileHeader is the 14-byte BITMAPFILEHEADER. It only exists for the
// duration of a single decode.
type fileHeader struct {
	fileSize    uint32
	pixelOffset uint32
}

// infoHeader is the canonical DIB header record. Whatever the declared
// version, parsing populates a single record by applying the version
// extension steps cumulatively; fields beyond the declared version keep
// their zero defaults until the mask resolution pass fills them in.
type infoHeader struct {
	headerSize      uint32
	width           int32
	height          int32 // negative height means top-down row order
	colorPlanes     uint16
	bitsPerPixel    uint16
	compression     uint32
	rawImageSize    uint32
	hResolution     int32
	vResolution     int32
	paletteColors   uint32
	importantColors uint32
	redMask         uint32
	greenMask       uint32
	blueMask        uint32
	alphaMask       uint32
	colorSpace      uint32
}

// hasMasks reports whether the on-disk header carried RGB channel masks.
func (h *infoHeader) hasMasks() bool { return h.headerSize >= infoHeaderV2Size }

// hasAlphaMask reports whether the on-disk header carried an alpha mask.
func (h *infoHeader) hasAlphaMask() bool { return h.headerSize >= infoHeaderV3Size }

func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("bmp: read %s: %w", what, err)
	}
	return nil
}

// readFileHeader reads and validates the 14-byte file header.
func readFileHeader(r io.ReadSeeker) (fileHeader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fileHeader{}, fmt.Errorf("bmp: seek file header: %w", err)
	}
	var buf [fileHeaderSize]byte
	if err := readFull(r, buf[:], "file header"); err != nil {
		return fileHeader{}, err
	}
	if string(buf[0:2]) != fileMagic {
		return fileHeader{}, fmt.Errorf("%w: %q", ErrBadMagic, buf[0:2])
	}
	return fileHeader{
		fileSize:    readLEU32(buf[:], 2),
		pixelOffset: readLEU32(buf[:], 10),
	}, nil
}

// readInfoHeader reads the versioned DIB header that follows the file
// header. The declared header size selects how many of the cumulative
// extension steps apply; the whole header is read in one pass and decoded
// step by step into one record.
func readInfoHeader(r io.ReadSeeker) (infoHeader, error) {
	if _, err := r.Seek(fileHeaderSize, io.SeekStart); err != nil {
		return infoHeader{}, fmt.Errorf("bmp: seek info header: %w", err)
	}
	var sizeBuf [4]byte
	if err := readFull(r, sizeBuf[:], "info header size"); err != nil {
		return infoHeader{}, err
	}
	size := readLEU32(sizeBuf[:], 0)

	switch size {
	case infoHeaderSize, infoHeaderV2Size, infoHeaderV3Size, infoHeaderV4Size, infoHeaderV5Size:
	case coreHeaderSize:
		return infoHeader{}, fmt.Errorf("%w: OS/2 core header", ErrUnsupportedHeaderVersion)
	default:
		return infoHeader{}, fmt.Errorf("%w: %d bytes", ErrUnsupportedHeaderVersion, size)
	}

	buf := make([]byte, size)
	if _, err := r.Seek(fileHeaderSize, io.SeekStart); err != nil {
		return infoHeader{}, fmt.Errorf("bmp: seek info header: %w", err)
	}
	if err := readFull(r, buf, "info header"); err != nil {
		return infoHeader{}, err
	}

	// Base fields common to every version.
	h := infoHeader{
		headerSize:      size,
		width:           readLEI32(buf, 4),
		height:          readLEI32(buf, 8),
		colorPlanes:     readLEU16(buf, 12),
		bitsPerPixel:    readLEU16(buf, 14),
		compression:     readLEU32(buf, 16),
		rawImageSize:    readLEU32(buf, 20),
		hResolution:     readLEI32(buf, 24),
		vResolution:     readLEI32(buf, 28),
		paletteColors:   readLEU32(buf, 32),
		importantColors: readLEU32(buf, 36),
	}

	// Version extension steps, applied in order.
	if h.hasMasks() {
		h.redMask = readLEU32(buf, 40)
		h.greenMask = readLEU32(buf, 44)
		h.blueMask = readLEU32(buf, 48)
	}
	if h.hasAlphaMask() {
		h.alphaMask = readLEU32(buf, 52)
	}
	if size >= infoHeaderV4Size {
		h.colorSpace = readLEU32(buf, 56)
		if h.colorSpace != colorSpaceSRGB {
			return infoHeader{}, fmt.Errorf("%w: 0x%08x", ErrUnsupportedColorSpace, h.colorSpace)
		}
	}

	switch h.compression {
	case compressionRGB, compressionBitfields:
	default:
		return infoHeader{}, fmt.Errorf("%w: %d", ErrUnsupportedCompression, h.compression)
	}

	return h, nil
}
