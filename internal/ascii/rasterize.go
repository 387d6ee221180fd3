package ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CellSize is the pixel footprint of one rendered character cell.
type CellSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RenderOptions configures RenderImage. Zero-value fields fall back to the
// documented defaults; DefaultRenderOptions returns them filled in.
type RenderOptions struct {
	// Cell is the pixel size of one character cell.
	// Default 7x13, the glyph metrics of basicfont.Face7x13.
	Cell CellSize

	// Background fills the canvas before any glyph is drawn. Nil defaults
	// to opaque black; a fully transparent color is honored as given.
	Background color.Color

	// Foreground draws cells that carry no color of their own.
	// Nil defaults to opaque white.
	Foreground color.Color

	// Face is the monospace font face glyphs are drawn with.
	// Default basicfont.Face7x13.
	Face font.Face
}

// DefaultRenderOptions returns the documented rasterization defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Cell:       CellSize{Width: 7, Height: 13},
		Background: color.NRGBA{A: 255},
		Foreground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Face:       basicfont.Face7x13,
	}
}

// RenderImage rasterizes a glyph grid onto a fresh pixel canvas of
// (cols x CellWidth, rows x CellHeight).
//
// The background is filled first, then each cell's character is drawn at its
// grid position with the cell's color if present, else the foreground
// default. Text rendering is delegated to golang.org/x/image/font. The
// output is deterministic: the same grid, face, and options always produce
// a pixel-identical image.
//
// An empty grid errors with ErrInvalidSize.
func RenderImage(g Grid, opts RenderOptions) (*image.NRGBA, error) {
	rows, cols := g.Height(), g.Width()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: glyph grid is empty (%dx%d)", ErrInvalidSize, cols, rows)
	}

	def := DefaultRenderOptions()
	if opts.Cell.Width <= 0 {
		opts.Cell.Width = def.Cell.Width
	}
	if opts.Cell.Height <= 0 {
		opts.Cell.Height = def.Cell.Height
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	if opts.Foreground == nil {
		opts.Foreground = def.Foreground
	}
	if opts.Face == nil {
		opts.Face = def.Face
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, cols*opts.Cell.Width, rows*opts.Cell.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ascent := opts.Face.Metrics().Ascent

	for y, row := range g {
		for x, c := range row {
			if c.Char == ' ' {
				continue
			}
			src := opts.Foreground
			if c.Colored {
				src = c.Color.NRGBA()
			}
			d := &font.Drawer{
				Dst:  canvas,
				Src:  image.NewUniform(src),
				Face: opts.Face,
				Dot: fixed.Point26_6{
					X: fixed.I(x * opts.Cell.Width),
					Y: fixed.I(y*opts.Cell.Height) + ascent,
				},
			}
			d.DrawString(string(c.Char))
		}
	}

	return canvas, nil
}
