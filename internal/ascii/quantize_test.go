package ascii

import (
	"image"
	"image/color"
	"testing"
)

// uniformImage creates an in-memory image filled with a single color.
func uniformImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// checkerboard2x2 creates the canonical 2x2 test pattern:
// black white / white black.
func checkerboard2x2() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(0, 1, color.White)
	img.Set(1, 1, color.Black)
	return img
}

func TestQuantize_Checkerboard(t *testing.T) {
	grid, err := Quantize(checkerboard2x2(), Charset(" #"), false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	want := [][]rune{
		{' ', '#'},
		{'#', ' '},
	}
	for y, row := range want {
		for x, ch := range row {
			if grid[y][x].Char != ch {
				t.Errorf("cell (%d,%d): got %q, want %q", x, y, grid[y][x].Char, ch)
			}
		}
	}
}

func TestQuantize_OutputDimensions(t *testing.T) {
	tests := []struct {
		width  int
		height int
	}{
		{1, 1},
		{3, 7},
		{16, 4},
	}

	for _, tt := range tests {
		grid, err := Quantize(uniformImage(tt.width, tt.height, color.White), DefaultCharset, false)
		if err != nil {
			t.Fatalf("Quantize failed: %v", err)
		}
		if grid.Width() != tt.width || grid.Height() != tt.height {
			t.Errorf("grid size: got %dx%d, want %dx%d", grid.Width(), grid.Height(), tt.width, tt.height)
		}
		for _, row := range grid {
			if len(row) != tt.width {
				t.Errorf("row length: got %d, want %d", len(row), tt.width)
			}
		}
	}
}

func TestQuantize_AllCharactersFromCharset(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x * 16)
			img.Set(x, y, color.RGBA{v, uint8(y * 16), 255 - v, 255})
		}
	}

	charset := Charset(" .oO@")
	members := make(map[rune]bool, len(charset))
	for _, r := range charset {
		members[r] = true
	}

	grid, err := Quantize(img, charset, false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	for y, row := range grid {
		for x, c := range row {
			if !members[c.Char] {
				t.Errorf("cell (%d,%d): character %q not in charset", x, y, c.Char)
			}
		}
	}
}

func TestQuantize_SingleCharCharset(t *testing.T) {
	grid, err := Quantize(checkerboard2x2(), Charset("X"), false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	for y, row := range grid {
		for x, c := range row {
			if c.Char != 'X' {
				t.Errorf("cell (%d,%d): got %q, want 'X'", x, y, c.Char)
			}
		}
	}
}

func TestQuantize_BrighterMapsDenser(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.Gray{0})
	img.Set(1, 0, color.Gray{128})
	img.Set(2, 0, color.Gray{255})

	grid, err := Quantize(img, DefaultCharset, false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	idx := func(ch rune) int {
		for i, r := range DefaultCharset {
			if r == ch {
				return i
			}
		}
		return -1
	}
	dark, mid, bright := idx(grid[0][0].Char), idx(grid[0][1].Char), idx(grid[0][2].Char)
	if !(dark < mid && mid < bright) {
		t.Errorf("density ordering: got indices %d, %d, %d; want strictly increasing", dark, mid, bright)
	}
	if bright != len(DefaultCharset)-1 {
		t.Errorf("white pixel: got index %d, want %d (densest)", bright, len(DefaultCharset)-1)
	}
}

func TestQuantize_ColorfulAttachesPixelColor(t *testing.T) {
	img := uniformImage(2, 1, color.RGBA{255, 0, 0, 255})

	grid, err := Quantize(img, DefaultCharset, true)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}

	cell := grid[0][0]
	if !cell.Colored {
		t.Fatal("cell should be colored in colorful mode")
	}
	if cell.Color.R != 255 || cell.Color.G != 0 || cell.Color.B != 0 {
		t.Errorf("cell color: got %v, want {255 0 0}", cell.Color)
	}
}

func TestQuantize_PlainModeHasNoColor(t *testing.T) {
	grid, err := Quantize(uniformImage(1, 1, color.RGBA{0, 255, 0, 255}), DefaultCharset, false)
	if err != nil {
		t.Fatalf("Quantize failed: %v", err)
	}
	if grid[0][0].Colored {
		t.Error("cell should not be colored in plain mode")
	}
}

func TestQuantize_EmptyCharset(t *testing.T) {
	_, err := Quantize(uniformImage(1, 1, color.White), Charset(""), false)
	if err == nil {
		t.Fatal("expected error for empty charset, got nil")
	}
}
