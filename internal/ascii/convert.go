package ascii

import (
	"image"

	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

// Options configures ImageToASCII. Build it with DefaultOptions and override
// fields as needed; the zero value has brightness and sharpness of 0, which
// is a black, blurred image rather than a no-op.
type Options struct {
	// Size is the explicit target in character cells. Nil derives the
	// target from the source pixel dimensions.
	Size *Dimensions

	// Scale multiplies the base dimensions. 0 means unset (1.0).
	Scale float64

	// FixScaling corrects the row count for the ~2:1 aspect of a terminal
	// glyph so the output visually matches the source. Default true.
	FixScaling bool

	// Brightness factor: 1.0 is identity, >1 brightens, <1 darkens.
	Brightness float64

	// Sharpness factor: 1.0 is identity, >1 sharpens, <1 blurs.
	Sharpness float64

	// Charset is the quantization palette, emptiest to densest.
	// Nil falls back to DefaultCharset.
	Charset Charset

	// SortCharset reorders the charset by rendered glyph coverage before
	// quantizing, so callers can pass the characters in any order.
	SortCharset bool

	// Colorful attaches each pixel's RGB to its output cell, rendered as
	// ANSI truecolor escapes.
	Colorful bool
}

// DefaultOptions returns the documented conversion defaults: derived size,
// aspect correction on, identity adjustments, DefaultCharset, no color.
func DefaultOptions() Options {
	return Options{
		FixScaling: true,
		Brightness: 1.0,
		Sharpness:  1.0,
		Charset:    DefaultCharset,
	}
}

// ImageToASCII converts a decoded image to its text representation by
// running the full pipeline: Resize, Adjust, Quantize, RenderText.
//
// All parameters are validated before any stage does resampling or
// filtering work. No stage mutates img.
func ImageToASCII(img image.Image, opts Options) (string, error) {
	if opts.Charset == nil {
		opts.Charset = DefaultCharset
	}
	if opts.SortCharset {
		opts.Charset = opts.Charset.SortByDensity(nil)
	}
	if err := checkAdjustments(opts.Brightness, opts.Sharpness); err != nil {
		return "", err
	}

	resized, err := Resize(img, opts.Size, opts.Scale, opts.FixScaling)
	if err != nil {
		return "", err
	}

	adjusted, err := Adjust(resized, opts.Brightness, opts.Sharpness)
	if err != nil {
		return "", err
	}

	grid, err := Quantize(adjusted, opts.Charset, opts.Colorful)
	if err != nil {
		return "", err
	}

	return RenderText(grid), nil
}

// FileToASCII loads an image through the cache, from disk or from an
// http(s) URL, and converts it. Decode failures wrap imaging.ErrDecode.
func FileToASCII(cache *imaging.ImageCache, source string, opts Options) (string, error) {
	img, err := cache.Load(source)
	if err != nil {
		return "", err
	}
	return ImageToASCII(img, opts)
}

// ASCIIToImage rasterizes plain or ANSI-escaped text back into an image,
// reversing RenderText's escaping before drawing.
func ASCIIToImage(text string, opts RenderOptions) (*image.NRGBA, error) {
	grid, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	return RenderImage(grid, opts)
}
