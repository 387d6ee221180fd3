package ascii

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// blurScale converts a sub-1.0 sharpness factor into a Gaussian blur sigma.
const blurScale = 2.0

// Adjust applies brightness and sharpness factors to an image, in that fixed
// order (the two do not commute because channels clip at [0,255]).
//
// A factor of 1.0 is the identity. When both factors are 1.0 the input image
// is returned as-is and no filter runs. Brightness is a per-channel multiply
// with clamping; sharpness above 1.0 sharpens and below 1.0 blurs, with
// strength proportional to the distance from 1.0. Filtering is delegated to
// github.com/disintegration/imaging, which always allocates a new image.
//
// Negative factors error with ErrInvalidAdjustment before any filtering.
func Adjust(img image.Image, brightness, sharpness float64) (image.Image, error) {
	if err := checkAdjustments(brightness, sharpness); err != nil {
		return nil, err
	}

	out := img
	if brightness != 1.0 {
		out = imaging.AdjustFunc(out, func(c color.NRGBA) color.NRGBA {
			return color.NRGBA{
				R: clampChannel(float64(c.R) * brightness),
				G: clampChannel(float64(c.G) * brightness),
				B: clampChannel(float64(c.B) * brightness),
				A: c.A,
			}
		})
	}

	switch {
	case sharpness > 1.0:
		out = imaging.Sharpen(out, sharpness-1.0)
	case sharpness < 1.0:
		out = imaging.Blur(out, (1.0-sharpness)*blurScale)
	}

	return out, nil
}

// checkAdjustments validates brightness and sharpness factors. The facade
// calls it up front so a bad factor is reported before the resize stage
// does any work.
func checkAdjustments(brightness, sharpness float64) error {
	if brightness < 0 {
		return fmt.Errorf("%w: brightness %v is negative", ErrInvalidAdjustment, brightness)
	}
	if sharpness < 0 {
		return fmt.Errorf("%w: sharpness %v is negative", ErrInvalidAdjustment, sharpness)
	}
	return nil
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
