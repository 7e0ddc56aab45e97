// Package imagecache stores decoded images on disk so a BMP asset only
// has to be decoded once. Entries are a small header followed by the
// zstd-compressed RGBA pixel payload.
package imagecache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/ianmurfinxyz/snake/pkg/bmp"
)

const (
	entryMagic   = "SNKC"
	entryVersion = 1
	headerSize   = 4 + 1 + 4 + 4 // magic, version, width, height
)

// ErrCorruptEntry is returned when a cache file exists but cannot be
// decoded. Callers should fall back to decoding the source asset.
var ErrCorruptEntry = errors.New("imagecache: corrupt cache entry")

// Cache is a directory of compressed decoded images keyed by asset name.
// A single Cache is not safe for concurrent use.
type Cache struct {
	dir string
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// New opens (creating if needed) a cache rooted at dir.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("imagecache: create %s: %w", dir, err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("imagecache: init encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("imagecache: init decoder: %w", err)
	}
	return &Cache{dir: dir, enc: enc, dec: dec}, nil
}

// Close releases the compressor state. The cache directory is kept.
func (c *Cache) Close() {
	c.enc.Close()
	c.dec.Close()
}

// entryPath maps an asset key to a file path inside the cache directory.
// Path separators in the key are flattened so a key can never escape it.
func (c *Cache) entryPath(key string) string {
	flat := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
	return filepath.Join(c.dir, strings.ToLower(flat)+".snkc")
}

// Store writes img under key, replacing any previous entry.
func (c *Cache) Store(key string, img *bmp.Image) error {
	buf := make([]byte, 0, headerSize+len(img.Pix)/4)
	buf = append(buf, entryMagic...)
	buf = append(buf, entryVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(img.Width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(img.Height))
	buf = c.enc.EncodeAll(img.Pix, buf)

	path := c.entryPath(key)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("imagecache: write %s: %w", path, err)
	}
	return nil
}

// Load reads the entry stored under key. A missing entry reports
// os.ErrNotExist; a damaged one reports ErrCorruptEntry.
func (c *Cache) Load(key string) (*bmp.Image, error) {
	path := c.entryPath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagecache: read %s: %w", path, err)
	}

	if len(data) < headerSize || string(data[:4]) != entryMagic {
		return nil, fmt.Errorf("%w: %s", ErrCorruptEntry, path)
	}
	if data[4] != entryVersion {
		return nil, fmt.Errorf("%w: %s: version %d", ErrCorruptEntry, path, data[4])
	}
	width := int32(binary.LittleEndian.Uint32(data[5:9]))
	height := int32(binary.LittleEndian.Uint32(data[9:13]))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %s: %dx%d", ErrCorruptEntry, path, width, height)
	}

	pix, err := c.dec.DecodeAll(data[headerSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptEntry, path, err)
	}
	if len(pix) != int(width)*int(height)*4 {
		return nil, fmt.Errorf("%w: %s: payload length %d", ErrCorruptEntry, path, len(pix))
	}

	return &bmp.Image{Width: width, Height: height, Pix: pix}, nil
}
