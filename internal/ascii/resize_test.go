package ascii

import (
	"errors"
	"image"
	"testing"
)

func TestResize_ScaleOnePreservesDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 17, 11))

	out, err := Resize(img, nil, 1.0, false)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if out.Bounds().Dx() != 17 || out.Bounds().Dy() != 11 {
		t.Errorf("dimensions: got %dx%d, want 17x11", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_ExplicitSizeLiteral(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))

	tests := []struct {
		name string
		size Dimensions
	}{
		{"small", Dimensions{Width: 2, Height: 2}},
		{"square", Dimensions{Width: 30, Height: 30}},
		{"tall", Dimensions{Width: 5, Height: 9}},
		{"upscale", Dimensions{Width: 200, Height: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(img, &tt.size, 0, false)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if out.Bounds().Dx() != tt.size.Width || out.Bounds().Dy() != tt.size.Height {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.size.Width, tt.size.Height)
			}
		})
	}
}

func TestResize_AspectCorrectionHalvesHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	out, err := Resize(img, &Dimensions{Width: 30, Height: 30}, 0, true)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 15 {
		t.Errorf("dimensions: got %dx%d, want 30x15", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_DefaultTargetDerivedFromSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))

	out, err := Resize(img, nil, 0, true)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 40x20", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_ScaleFactor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	tests := []struct {
		name       string
		scale      float64
		fixScaling bool
		wantW      int
		wantH      int
	}{
		{"half", 0.5, false, 50, 50},
		{"half corrected", 0.5, true, 50, 25},
		{"double", 2.0, false, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resize(img, nil, tt.scale, tt.fixScaling)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResize_ScaleAppliesOnTopOfSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))

	out, err := Resize(img, &Dimensions{Width: 20, Height: 20}, 0.5, false)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_NegativeScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	_, err := Resize(img, nil, -0.5, true)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error kind: got %v, want ErrInvalidSize", err)
	}
}

func TestResize_TargetRoundsToZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	_, err := Resize(img, nil, 0.001, false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("error kind: got %v, want ErrInvalidSize", err)
	}
}

func TestResize_PreservesPixelValues(t *testing.T) {
	// Identity resize of a known pattern must keep pixels intact.
	img := checkerboard2x2()

	out, err := Resize(img, &Dimensions{Width: 2, Height: 2}, 0, false)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	r, _, _, _ := out.At(0, 0).RGBA()
	if r != 0 {
		t.Errorf("pixel (0,0): got red %d, want 0 (black)", r>>8)
	}
	r, _, _, _ = out.At(1, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("pixel (1,0): got red %d, want 255 (white)", r>>8)
	}
}
