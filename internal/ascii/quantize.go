package ascii

import (
	"fmt"
	"image"

	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

// Cell is one character-sized unit of output. Color is meaningful only when
// Colored is true (colorful mode).
type Cell struct {
	Char    rune
	Color   imaging.RGBColor
	Colored bool
}

// Grid is the glyph grid: rows of Cells, every row the same length.
type Grid [][]Cell

// Width returns the number of columns (0 for an empty grid).
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Quantize maps every pixel of img to a character of charset, producing a
// Grid with exactly the image's width x height cells.
//
// Per pixel the luminance L = (0.299R + 0.587G + 0.114B) / 255 (ITU-R BT.601
// weights) selects the charset index floor(L * (len-1)), clamped to the
// charset bounds. Brighter pixels therefore map to later, denser characters.
// A single-character charset is degenerate but legal: every cell gets that
// character regardless of luminance.
//
// With colorful set, each Cell additionally carries the pixel's original
// RGB; the character itself is still luminance-derived.
func Quantize(img image.Image, charset Charset, colorful bool) (Grid, error) {
	if len(charset) == 0 {
		return nil, fmt.Errorf("charset must contain at least one character")
	}

	bounds := img.Bounds()
	grid := make(Grid, bounds.Dy())

	for y := 0; y < bounds.Dy(); y++ {
		row := make([]Cell, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)

			idx := 0
			if len(charset) > 1 {
				lum := (0.299*float64(r8) + 0.587*float64(g8) + 0.114*float64(b8)) / 255.0
				idx = int(lum * float64(len(charset)-1))
				if idx < 0 {
					idx = 0
				}
				if idx > len(charset)-1 {
					idx = len(charset) - 1
				}
			}

			cell := Cell{Char: charset[idx]}
			if colorful {
				cell.Color = imaging.RGBColor{R: r8, G: g8, B: b8}
				cell.Colored = true
			}
			row[x] = cell
		}
		grid[y] = row
	}

	return grid, nil
}
