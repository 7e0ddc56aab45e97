package bmp

import (
	"fmt"
	"io"
	"math/bits"
)

// Default channel masks for the direct pixel formats. A 16-bit BI_RGB
// bitmap is 5-5-5 with the top bit as alpha; 24 and 32 bit bitmaps are
// 8 bits per channel with alpha, when present, in the top byte.
const (
	mask16Red   = 0x00007C00
	mask16Green = 0x000003E0
	mask16Blue  = 0x0000001F
	mask16Alpha = 0x00008000

	mask32Red   = 0x00FF0000
	mask32Green = 0x0000FF00
	mask32Blue  = 0x000000FF
	mask32Alpha = 0xFF000000
)

// channelMask couples a packed-pixel bit mask with the shift that
// right-aligns the channel value after masking. A zero mask means the
// channel is absent and contributes nothing.
type channelMask struct {
	mask  uint32
	shift int
}

func newChannelMask(mask uint32) channelMask {
	if mask == 0 {
		return channelMask{}
	}
	return channelMask{mask: mask, shift: bits.TrailingZeros32(mask)}
}

func (m channelMask) present() bool { return m.mask != 0 }

func (m channelMask) extract(packed uint32) uint8 {
	return uint8((packed & m.mask) >> m.shift)
}

// pixelMasks holds the final per-channel masks used by the direct decode
// path.
type pixelMasks struct {
	red, green, blue, alpha channelMask
}

// resolveMasks produces the final channel masks for a 16, 24 or 32
// bit-per-pixel bitmap. For BI_BITFIELDS with a plain 40-byte header the
// RGB masks are not part of the header; they live in a 12-byte block
// appended directly after it, and are read from there. Headers that
// already carry masks (V2 and later) are never re-read. A custom alpha
// mask supplied by a V3+ header is never overwritten by a default.
func resolveMasks(r io.ReadSeeker, h *infoHeader) (pixelMasks, error) {
	var red, green, blue, alpha uint32

	switch h.bitsPerPixel {
	case 16:
		if h.compression == compressionBitfields {
			if err := readAppendedMasks(r, h); err != nil {
				return pixelMasks{}, err
			}
			red, green, blue = h.redMask, h.greenMask, h.blueMask
			alpha = h.alphaMask
		} else {
			red, green, blue = mask16Red, mask16Green, mask16Blue
			alpha = mask16Alpha
			if h.hasAlphaMask() && h.alphaMask != 0 {
				alpha = h.alphaMask
			}
		}
	case 24:
		red, green, blue = mask32Red, mask32Green, mask32Blue
		alpha = 0
	case 32:
		if h.compression == compressionBitfields {
			if err := readAppendedMasks(r, h); err != nil {
				return pixelMasks{}, err
			}
			red, green, blue = h.redMask, h.greenMask, h.blueMask
			alpha = h.alphaMask
		} else {
			red, green, blue = mask32Red, mask32Green, mask32Blue
			alpha = mask32Alpha
			if h.hasAlphaMask() && h.alphaMask != 0 {
				alpha = h.alphaMask
			}
		}
	default:
		return pixelMasks{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, h.bitsPerPixel)
	}

	return pixelMasks{
		red:   newChannelMask(red),
		green: newChannelMask(green),
		blue:  newChannelMask(blue),
		alpha: newChannelMask(alpha),
	}, nil
}

// readAppendedMasks fills in the RGB masks for a BI_BITFIELDS bitmap whose
// 40-byte header carries none: they are stored as a 12-byte block between
// the header and the pixel array. No-op when the header version already
// carries masks.
func readAppendedMasks(r io.ReadSeeker, h *infoHeader) error {
	if h.hasMasks() {
		return nil
	}
	if _, err := r.Seek(fileHeaderSize+int64(h.headerSize), io.SeekStart); err != nil {
		return fmt.Errorf("bmp: seek channel masks: %w", err)
	}
	var buf [12]byte
	if err := readFull(r, buf[:], "channel masks"); err != nil {
		return err
	}
	h.redMask = readLEU32(buf[:], 0)
	h.greenMask = readLEU32(buf[:], 4)
	h.blueMask = readLEU32(buf[:], 8)
	return nil
}
