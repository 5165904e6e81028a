package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of decoded images an ImageCache keeps when
// no size is given.
const DefaultCacheSize = 32

// ImageCache keeps recently decoded images so repeated color sampling on the
// same file does not decode it again.
//
// Entries are keyed by absolute path and revalidated against the file's size
// and modification time, so a file rewritten on disk is decoded afresh. Once
// the cache is full the least recently used image is dropped.
//
// ImageCache is safe for concurrent use.
//
//	cache := imaging.NewImageCache(0)
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sample, err := imaging.SampleColor(img, 10, 10)
type ImageCache struct {
	entries *lru.Cache
}

type cacheEntry struct {
	img     image.Image
	size    int64
	modTime time.Time
}

// NewImageCache creates a cache holding up to size images. A size of zero or
// less uses DefaultCacheSize.
func NewImageCache(size int) *ImageCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	entries, _ := lru.New(size)
	return &ImageCache{entries: entries}
}

// Load returns the image at path, decoding it on first use or when the file
// changed since it was cached.
//
// PNG, JPEG, GIF, BMP and TIFF are supported. EXIF orientation is applied,
// so coordinates refer to the image as it is displayed.
func (c *ImageCache) Load(path string) (image.Image, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	info, err := os.Stat(key)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open image: %s is a directory", path)
	}

	if v, ok := c.entries.Get(key); ok {
		e := v.(cacheEntry)
		if e.size == info.Size() && e.modTime.Equal(info.ModTime()) {
			return e.img, nil
		}
	}

	img, err := imaging.Open(key, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.entries.Add(key, cacheEntry{img: img, size: info.Size(), modTime: info.ModTime()})
	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return c.entries.Len()
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.entries.Purge()
}

// Evict removes the image cached for path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	if key, err := filepath.Abs(path); err == nil {
		c.entries.Remove(key)
	}
}
