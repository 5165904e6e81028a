package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sync/errgroup"
)

// writePNG writes a solid width x height PNG to path.
func writePNG(t *testing.T, path string, width, height int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// createTestImage writes a solid PNG into a per-test temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-image.png")
	writePNG(t, path, width, height, c)
	return path
}

func TestNewImageCache(t *testing.T) {
	tests := []struct {
		size int
	}{{0}, {-3}, {1}, {64}}

	for _, tt := range tests {
		cache := NewImageCache(tt.size)
		if cache == nil || cache.entries == nil {
			t.Fatalf("NewImageCache(%d) returned an unusable cache", tt.size)
		}
		if cache.Len() != 0 {
			t.Errorf("NewImageCache(%d): Len got %d, want 0", tt.size, cache.Len())
		}
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache(0)
	imgPath := createTestImage(t, 100, 80, color.NRGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img1.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", b.Dx(), b.Dy())
	}

	// an unchanged file is served from the cache
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}

	// same file through a different spelling of the path
	img3, err := cache.Load(filepath.Join(filepath.Dir(imgPath), ".", filepath.Base(imgPath)))
	if err != nil {
		t.Fatalf("third Load failed: %v", err)
	}
	if img3 != img1 {
		t.Error("equivalent path did not hit the cache")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_ReloadsChangedFile(t *testing.T) {
	cache := NewImageCache(0)
	imgPath := createTestImage(t, 10, 10, color.NRGBA{255, 0, 0, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	writePNG(t, imgPath, 20, 5, color.NRGBA{0, 0, 255, 255})

	img, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load after rewrite failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 5 {
		t.Errorf("dimensions after rewrite: got %dx%d, want 20x5", b.Dx(), b.Dy())
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestImageCache_LeastRecentlyUsedDropped(t *testing.T) {
	cache := NewImageCache(2)
	dir := t.TempDir()

	paths := make([]string, 3)
	for i := range paths {
		paths[i] = filepath.Join(dir, string(rune('a'+i))+".png")
		writePNG(t, paths[i], 4, 4, color.NRGBA{uint8(i * 100), 0, 0, 255})
	}

	for _, p := range paths {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load(%s) failed: %v", p, err)
		}
	}

	if cache.Len() != 2 {
		t.Errorf("Len: got %d, want 2", cache.Len())
	}
	if cache.entries.Contains(paths[0]) {
		t.Error("oldest image should have been dropped")
	}
	if !cache.entries.Contains(paths[2]) {
		t.Error("newest image should be cached")
	}
}

func TestImageCache_Load_Errors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.png")
	if err := os.WriteFile(invalid, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"non-existent", "/nonexistent/path/to/image.png"},
		{"invalid data", invalid},
		{"directory", dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewImageCache(0)
			if _, err := cache.Load(tt.path); err == nil {
				t.Errorf("Load(%s) should fail", tt.path)
			}
			if cache.Len() != 0 {
				t.Errorf("failed Load should not cache anything, Len %d", cache.Len())
			}
		})
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	cache := NewImageCache(0)
	imgPath := createTestImage(t, 5, 5, color.NRGBA{0, 255, 0, 255})

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(imgPath)
	if cache.Len() != 0 {
		t.Errorf("Evict did not remove image: Len %d", cache.Len())
	}

	// Should not panic
	cache.Evict("/nonexistent/path")

	if _, err := cache.Load(imgPath); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if n := cache.Len(); n != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", n)
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache(0)
	imgPath := createTestImage(t, 50, 50, color.NRGBA{128, 128, 128, 255})

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			img, err := cache.Load(imgPath)
			if err != nil {
				return err
			}
			_, err = SampleColor(img, 25, 25)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		t.Errorf("concurrent Load error: %v", err)
	}
}
