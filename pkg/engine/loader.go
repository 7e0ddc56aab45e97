package engine

import (
	"io/fs"
	"os"

	"github.com/ianmurfinxyz/snake/pkg/bmp"
	"github.com/ianmurfinxyz/snake/pkg/fileutil"
	"github.com/ianmurfinxyz/snake/pkg/imagecache"
	"github.com/ianmurfinxyz/snake/pkg/logger"
)

// FilesystemAssetLoader implements AssetLoader over a directory.
// Lookups ignore case because asset names inherited from the original
// Windows build vary in case.
type FilesystemAssetLoader struct {
	baseDir string
}

// NewFilesystemAssetLoader creates an AssetLoader rooted at baseDir.
func NewFilesystemAssetLoader(baseDir string) AssetLoader {
	return &FilesystemAssetLoader{baseDir: baseDir}
}

// ReadFile reads the named file from the asset directory.
func (f *FilesystemAssetLoader) ReadFile(name string) ([]byte, error) {
	path, err := fileutil.FindFileCaseInsensitive(f.baseDir, name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// FSAssetLoader implements AssetLoader over an fs.FS, which allows
// embed.FS and test file systems.
type FSAssetLoader struct {
	fsys fs.FS
	dir  string
}

// NewFSAssetLoader creates an AssetLoader reading from dir inside fsys.
func NewFSAssetLoader(fsys fs.FS, dir string) AssetLoader {
	return &FSAssetLoader{fsys: fsys, dir: dir}
}

// ReadFile reads the named file from the file system.
func (f *FSAssetLoader) ReadFile(name string) ([]byte, error) {
	path, err := fileutil.FindFileCaseInsensitiveFS(f.fsys, f.dir, name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(f.fsys, path)
}

// BMPImageDecoder implements ImageDecoder for BMP sprite assets.
type BMPImageDecoder struct{}

// NewBMPImageDecoder creates a new BMP image decoder.
func NewBMPImageDecoder() ImageDecoder {
	return &BMPImageDecoder{}
}

// Decode decodes a BMP image from the provided byte data.
// Formats without an alpha channel decode with alpha zero; a fully
// transparent sprite would be invisible, so those are forced opaque.
func (b *BMPImageDecoder) Decode(name string, data []byte) (*bmp.Image, error) {
	img, err := bmp.DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	forceOpaqueIfTransparent(img)
	return img, nil
}

func forceOpaqueIfTransparent(img *bmp.Image) {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			return
		}
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
}

// CachingDecoder wraps an ImageDecoder with a read-through disk cache.
// Cache misses and corrupt entries fall back to the inner decoder.
type CachingDecoder struct {
	cache *imagecache.Cache
	inner ImageDecoder
}

// NewCachingDecoder creates a decoder that consults cache before inner.
func NewCachingDecoder(cache *imagecache.Cache, inner ImageDecoder) ImageDecoder {
	return &CachingDecoder{cache: cache, inner: inner}
}

// Decode returns the cached image for name if present, decoding and
// caching it otherwise.
func (c *CachingDecoder) Decode(name string, data []byte) (*bmp.Image, error) {
	if img, err := c.cache.Load(name); err == nil {
		logger.Get().Debug("image cache hit", "asset", name)
		return img, nil
	}

	img, err := c.inner.Decode(name, data)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Store(name, img); err != nil {
		logger.Get().Warn("image cache store failed", "asset", name, "error", err)
	}
	return img, nil
}
