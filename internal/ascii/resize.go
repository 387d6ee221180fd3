package ascii

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// glyphAspect is the approximate height:width ratio of a monospace terminal
// character cell. When scaling correction is enabled the requested row count
// is divided by this factor so the rendered output visually matches the
// source aspect ratio.
const glyphAspect = 2.0

// Dimensions is a (width, height) pair: pixel counts upstream of resizing,
// character-cell counts downstream.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Resize resamples an image to a character-cell grid.
//
// The base dimensions are size if non-nil, otherwise the source pixel
// dimensions. scale multiplies both axes (0 means unset and is treated as
// 1.0). With fixScaling the height is additionally divided by glyphAspect;
// with fixScaling false the requested cell counts are honored literally.
//
// Resampling is nearest-neighbor and handles both up- and downscaling. The
// source image is never mutated; a fresh grid is returned.
//
// Errors wrap ErrInvalidSize for a negative scale or for target dimensions
// that round below one cell, and are returned before any resampling work.
func Resize(img image.Image, size *Dimensions, scale float64, fixScaling bool) (image.Image, error) {
	if scale < 0 {
		return nil, fmt.Errorf("%w: scale %v is negative", ErrInvalidSize, scale)
	}
	if scale == 0 {
		scale = 1.0
	}

	bounds := img.Bounds()
	baseW, baseH := bounds.Dx(), bounds.Dy()
	if size != nil {
		baseW, baseH = size.Width, size.Height
	}

	width := int(math.Round(float64(baseW) * scale))
	height := int(math.Round(float64(baseH) * scale))
	if fixScaling {
		height = int(math.Round(float64(baseH) * scale / glyphAspect))
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: computed target %dx%d cells (size=%v scale=%v)",
			ErrInvalidSize, width, height, size, scale)
	}

	return transform.Resize(img, width, height, transform.NearestNeighbor), nil
}
