package ascii

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/ajratnam/image-to-ascii/internal/imaging"
)

func TestRenderImage_CanvasSize(t *testing.T) {
	img, err := RenderImage(plainGrid("@@@", "@@@"), DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	if img.Bounds().Dx() != 3*7 || img.Bounds().Dy() != 2*13 {
		t.Errorf("canvas: got %dx%d, want 21x26", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderImage_CustomCellSize(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Cell = CellSize{Width: 10, Height: 20}

	img, err := RenderImage(plainGrid("@@"), opts)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Errorf("canvas: got %dx%d, want 20x20", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderImage_BackgroundFilledFirst(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Background = color.NRGBA{R: 0, G: 0, B: 255, A: 255}

	// A grid of spaces draws nothing, so every pixel stays background.
	img, err := RenderImage(plainGrid("  ", "  "), opts)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.NRGBAAt(x, y) != opts.Background {
				t.Fatalf("pixel (%d,%d): got %v, want background %v", x, y, img.NRGBAAt(x, y), opts.Background)
			}
		}
	}
}

func TestRenderImage_TransparentBackground(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Background = color.NRGBA{} // fully transparent, explicitly requested

	img, err := RenderImage(plainGrid(" "), opts)
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if a := img.NRGBAAt(x, y).A; a != 0 {
				t.Fatalf("pixel (%d,%d): alpha %d, want 0 (transparent background)", x, y, a)
			}
		}
	}
}

func TestRenderImage_DrawsGlyphInForeground(t *testing.T) {
	img, err := RenderImage(plainGrid("@"), DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	found := false
	for y := 0; y < img.Bounds().Dy() && !found; y++ {
		for x := 0; x < img.Bounds().Dx() && !found; x++ {
			if img.NRGBAAt(x, y) == white {
				found = true
			}
		}
	}
	if !found {
		t.Error("glyph should leave foreground pixels on the canvas")
	}
}

func TestRenderImage_UsesCellColor(t *testing.T) {
	g := Grid{{Cell{Char: '@', Color: imaging.RGBColor{R: 255, G: 0, B: 0}, Colored: true}}}

	img, err := RenderImage(g, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	red := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	foundRed := false
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			switch img.NRGBAAt(x, y) {
			case red:
				foundRed = true
			case white:
				t.Fatal("colored cell must not be drawn with the default foreground")
			}
		}
	}
	if !foundRed {
		t.Error("colored cell should leave red pixels on the canvas")
	}
}

func TestRenderImage_Deterministic(t *testing.T) {
	g := Grid{{
		Cell{Char: '#'},
		Cell{Char: '%', Color: imaging.RGBColor{R: 10, G: 200, B: 30}, Colored: true},
	}}

	a, err := RenderImage(g, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}
	b, err := RenderImage(g, DefaultRenderOptions())
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical inputs should produce pixel-identical output")
	}
}

func TestRenderImage_ZeroOptionsGetDefaults(t *testing.T) {
	img, err := RenderImage(plainGrid("@"), RenderOptions{})
	if err != nil {
		t.Fatalf("RenderImage failed: %v", err)
	}

	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 13 {
		t.Errorf("canvas: got %dx%d, want default cell 7x13", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderImage_EmptyGrid(t *testing.T) {
	_, err := RenderImage(Grid{}, DefaultRenderOptions())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error kind: got %v, want ErrInvalidSize", err)
	}
}
