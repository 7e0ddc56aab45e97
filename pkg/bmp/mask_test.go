package bmp

import (
	"bytes"
	"testing"
)

func TestChannelMaskShift(t *testing.T) {
	cases := []struct {
		mask    uint32
		shift   int
		present bool
	}{
		{0x0000F800, 11, true},
		{0x00007C00, 10, true},
		{0x000003E0, 5, true},
		{0x0000001F, 0, true},
		{0x00008000, 15, true},
		{0x00FF0000, 16, true},
		{0xFF000000, 24, true},
		{0x00000001, 0, true},
		{0x00000000, 0, false},
	}
	for _, c := range cases {
		m := newChannelMask(c.mask)
		if m.shift != c.shift {
			t.Errorf("mask 0x%08X: expected shift %d, got %d", c.mask, c.shift, m.shift)
		}
		if m.present() != c.present {
			t.Errorf("mask 0x%08X: expected present=%v", c.mask, c.present)
		}
	}
}

func TestChannelMaskExtract(t *testing.T) {
	m := newChannelMask(0x0000F800)
	if got := m.extract(0xFFFF); got != 0x1F {
		t.Errorf("expected 0x1F, got 0x%02X", got)
	}
	absent := newChannelMask(0)
	if got := absent.extract(0xFFFFFFFF); got != 0 {
		t.Errorf("absent channel must extract 0, got 0x%02X", got)
	}
}

func TestResolveMasksDefaults(t *testing.T) {
	cases := []struct {
		name string
		h    infoHeader
		want pixelMasks
	}{
		{
			name: "16-bit BI_RGB",
			h:    infoHeader{headerSize: infoHeaderSize, bitsPerPixel: 16},
			want: pixelMasks{
				red:   newChannelMask(mask16Red),
				green: newChannelMask(mask16Green),
				blue:  newChannelMask(mask16Blue),
				alpha: newChannelMask(mask16Alpha),
			},
		},
		{
			name: "24-bit",
			h:    infoHeader{headerSize: infoHeaderSize, bitsPerPixel: 24},
			want: pixelMasks{
				red:   newChannelMask(mask32Red),
				green: newChannelMask(mask32Green),
				blue:  newChannelMask(mask32Blue),
			},
		},
		{
			name: "32-bit BI_RGB",
			h:    infoHeader{headerSize: infoHeaderSize, bitsPerPixel: 32},
			want: pixelMasks{
				red:   newChannelMask(mask32Red),
				green: newChannelMask(mask32Green),
				blue:  newChannelMask(mask32Blue),
				alpha: newChannelMask(mask32Alpha),
			},
		},
		{
			name: "32-bit BI_RGB with V3 custom alpha",
			h: infoHeader{
				headerSize:   infoHeaderV3Size,
				bitsPerPixel: 32,
				alphaMask:    0x000000FF,
			},
			want: pixelMasks{
				red:   newChannelMask(mask32Red),
				green: newChannelMask(mask32Green),
				blue:  newChannelMask(mask32Blue),
				alpha: newChannelMask(0x000000FF),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := c.h
			got, err := resolveMasks(bytes.NewReader(nil), &h)
			if err != nil {
				t.Fatalf("resolveMasks failed: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestResolveMasksUnsupportedDepth(t *testing.T) {
	h := infoHeader{headerSize: infoHeaderSize, bitsPerPixel: 12}
	if _, err := resolveMasks(bytes.NewReader(nil), &h); err == nil {
		t.Fatal("expected error for unsupported bit depth")
	}
}
