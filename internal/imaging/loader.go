package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// Sentinel errors for the two I/O boundaries of a conversion. Every failure
// returned by this package wraps one of them.
var (
	// ErrDecode indicates the source image could not be read or decoded.
	ErrDecode = errors.New("image decode failed")

	// ErrEncode indicates the output image could not be encoded or written.
	ErrEncode = errors.New("image encode failed")
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant
// disk reads and network fetches.
//
// The cache stores decoded image.Image objects keyed by their source string
// (file path or URL). Once an image is loaded, subsequent Load() calls for
// the same source return the cached copy without I/O. Cached images remain
// in memory until removed via Evict() or Clear(); long-running processes
// converting many images should clean up periodically.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache, or loads it from disk or over
// http(s) if not cached.
//
// A source starting with "http://" or "https://" is fetched with a GET
// request; anything else is opened as a local file path. Supported formats
// are PNG, JPEG, and GIF. The image is cached using the exact source string
// provided; different strings naming the same image result in separate cache
// entries.
//
// Errors wrap ErrDecode when the source does not exist, cannot be read, or
// is not a valid image.
func (c *ImageCache) Load(source string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[source]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	r, err := openSource(source)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrDecode, source, err)
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", ErrDecode, source, err)
	}

	c.mu.Lock()
	c.images[source] = img
	c.mu.Unlock()

	return img, nil
}

// remoteSource reports whether a source string names an http(s) URL rather
// than a local file.
func remoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// openSource opens a source for reading, dispatching between the local
// filesystem and an HTTP GET.
func openSource(source string) (io.ReadCloser, error) {
	if !remoteSource(source) {
		return os.Open(source)
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Save writes an image to disk, inferring the output format from the file
// extension (.png, .jpg/.jpeg, .gif, .tif/.tiff, .bmp).
//
// Encoding is delegated to github.com/disintegration/imaging. Errors wrap
// ErrEncode.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: save %q: %v", ErrEncode, path, err)
	}
	return nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", or
	// "unknown". Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// HasAlpha indicates whether the image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes. Zero
	// for remote sources, where no stat is available.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns metadata about
// it: dimensions, format (by extension), alpha presence, and file size.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()

	var fileSize int64
	if !remoteSource(path) {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: stat %q: %v", ErrDecode, path, err)
		}
		fileSize = stat.Size()
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: fileSize,
	}, nil
}
