package bmp

import (
	"encoding/binary"
	"image/color"
)

// bmpFile assembles synthetic BMP byte streams for tests. Field defaults
// describe a well-formed file; individual fields are overridden to probe
// a specific validation.
type bmpFile struct {
	magic         string // defaults to "BM"
	headerSize    uint32 // defaults to 40
	width         int32
	height        int32
	bitsPerPixel  uint16
	compression   uint32
	paletteCount  uint32 // declared count; 0 with a palette present writes the full table
	colorSpace    uint32 // defaults to sRGB for V4/V5 sizes
	redMask       uint32 // header masks, written for sizes >= 52
	greenMask     uint32
	blueMask      uint32
	alphaMask     uint32 // written for sizes >= 56
	appendedMasks []uint32
	palette       []color.RGBA
	pixelData     []byte
	pixelOffset   uint32 // 0 means computed from the layout
}

func (f *bmpFile) bytes() []byte {
	magic := f.magic
	if magic == "" {
		magic = "BM"
	}
	headerSize := f.headerSize
	if headerSize == 0 {
		headerSize = 40
	}
	colorSpace := f.colorSpace
	if colorSpace == 0 {
		colorSpace = colorSpaceSRGB
	}

	pixelOffset := 14 + headerSize + uint32(len(f.appendedMasks))*4 + uint32(len(f.palette))*4
	if f.pixelOffset != 0 {
		pixelOffset = f.pixelOffset
	}
	fileSize := pixelOffset + uint32(len(f.pixelData))

	buf := make([]byte, 0, fileSize)
	u16 := func(v uint16) {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	u32 := func(v uint32) {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}

	buf = append(buf, magic...)
	u32(fileSize)
	u16(0)
	u16(0)
	u32(pixelOffset)

	infoStart := len(buf)
	u32(headerSize)
	u32(uint32(f.width))
	u32(uint32(f.height))
	u16(1) // color planes
	u16(f.bitsPerPixel)
	u32(f.compression)
	u32(0) // raw image size
	u32(0) // h-resolution
	u32(0) // v-resolution
	u32(f.paletteCount)
	u32(0) // important colors
	if headerSize >= 52 {
		u32(f.redMask)
		u32(f.greenMask)
		u32(f.blueMask)
	}
	if headerSize >= 56 {
		u32(f.alphaMask)
	}
	if headerSize >= 108 {
		u32(colorSpace)
	}
	// Pad the remainder of the declared header with zeros.
	for uint32(len(buf)-infoStart) < headerSize {
		buf = append(buf, 0)
	}

	for _, m := range f.appendedMasks {
		u32(m)
	}
	for _, c := range f.palette {
		buf = append(buf, c.B, c.G, c.R, 0)
	}
	buf = append(buf, f.pixelData...)
	return buf
}
