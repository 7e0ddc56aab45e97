package bmp

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_RowStrideAlignment tests that every scanline is 4-byte
// aligned and holds exactly the pixel bits plus less than one alignment
// unit of padding.
func TestProperty_RowStrideAlignment(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	depths := []int{1, 2, 4, 8, 16, 24, 32}

	properties.Property("stride is the smallest 4-byte multiple that fits the row", prop.ForAll(
		func(width, depthIdx int) bool {
			bpp := depths[depthIdx]
			stride := rowStride(width, bpp)
			if stride%4 != 0 {
				return false
			}
			rowBits := width * bpp
			if stride*8 < rowBits {
				return false
			}
			return (stride-4)*8 < rowBits
		},
		gen.IntRange(1, 4096),
		gen.IntRange(0, len(depths)-1),
	))

	properties.TestingRun(t)
}

// TestProperty_MaskShiftRoundTrip tests that a contiguous mask of n bits
// placed at bit s always resolves to shift s.
func TestProperty_MaskShiftRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("trailing zero count recovers the mask position", prop.ForAll(
		func(shift, width int) bool {
			if shift+width > 32 {
				return true // not a representable mask
			}
			mask := uint32((uint64(1)<<width - 1) << shift)
			m := newChannelMask(mask)
			return m.present() && m.shift == shift
		},
		gen.IntRange(0, 31),
		gen.IntRange(1, 8),
	))

	properties.Property("zero mask means channel absent", prop.ForAll(
		func(packed uint32) bool {
			m := newChannelMask(0)
			return !m.present() && m.extract(packed) == 0
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

// TestProperty_NegativeHeightMirrors tests that the same pixel bytes
// decoded with height +h and -h produce vertically mirrored images.
func TestProperty_NegativeHeightMirrors(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("flipping the height sign flips the rows", prop.ForAll(
		func(width, height int, seed int64) bool {
			rnd := rand.New(rand.NewSource(seed))
			data := make([]byte, rowStride(width, 24)*height)
			rnd.Read(data)

			up, err := DecodeBytes((&bmpFile{
				width: int32(width), height: int32(height),
				bitsPerPixel: 24, pixelData: data,
			}).bytes())
			if err != nil {
				return false
			}
			down, err := DecodeBytes((&bmpFile{
				width: int32(width), height: int32(-height),
				bitsPerPixel: 24, pixelData: data,
			}).bytes())
			if err != nil {
				return false
			}

			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if up.At(x, y) != down.At(x, height-1-y) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 16),
		gen.IntRange(1, 16),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestProperty_PixelCount tests that a successful decode always yields
// exactly width*height pixels, whatever the bit depth.
func TestProperty_PixelCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	depths := []uint16{1, 2, 4, 8, 16, 24, 32}

	properties.Property("decoded image holds width*height pixels", prop.ForAll(
		func(width, height, depthIdx int) bool {
			bpp := depths[depthIdx]
			f := &bmpFile{
				width:        int32(width),
				height:       int32(height),
				bitsPerPixel: bpp,
				pixelData:    make([]byte, rowStride(width, int(bpp))*height),
			}
			if bpp <= 8 {
				f.paletteCount = uint32(len(testPalette))
				f.palette = testPalette
			}
			img, err := DecodeBytes(f.bytes())
			if err != nil {
				return false
			}
			return len(img.Pix) == width*height*4
		},
		gen.IntRange(1, 32),
		gen.IntRange(1, 32),
		gen.IntRange(0, len(depths)-1),
	))

	properties.TestingRun(t)
}
