package ascii

import (
	"image"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Charset is the quantization palette: an ordered sequence of characters
// from visually emptiest (index 0) to visually densest (last index).
//
// Length must be at least 1. Duplicates are permitted; only the order
// matters. The ordering convention lives in the charset value itself, not
// in the quantizer, so a caller can invert the mapping by reversing the
// sequence.
type Charset []rune

// DefaultCharset is a ten-step ASCII density ramp, sparse to dense.
var DefaultCharset = Charset(" .:-=+*#%@")

// String returns the charset as a plain string, densest character last.
func (c Charset) String() string {
	return string(c)
}

// SortByDensity returns a copy of the charset reordered from visually
// emptiest to densest. Density is measured by rasterizing each character
// with face and counting the pixels its glyph covers, so an arbitrary or
// shuffled character set can be turned into a valid ramp.
//
// A nil face uses basicfont.Face7x13, the rasterizer default. The sort is
// stable: characters with equal coverage keep their relative order. The
// receiver is not modified.
func (c Charset) SortByDensity(face font.Face) Charset {
	if face == nil {
		face = basicfont.Face7x13
	}

	out := make(Charset, len(c))
	copy(out, c)

	coverage := make(map[rune]int, len(out))
	for _, r := range out {
		if _, ok := coverage[r]; !ok {
			coverage[r] = glyphCoverage(r, face)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return coverage[out[i]] < coverage[out[j]]
	})
	return out
}

// glyphCoverage counts the pixels face inks for one character.
func glyphCoverage(r rune, face font.Face) int {
	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance(r)
	if !ok {
		advance = metrics.Height
	}

	width := advance.Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	canvas := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(string(r))

	covered := 0
	for _, a := range canvas.Pix {
		if a > 0 {
			covered++
		}
	}
	return covered
}
