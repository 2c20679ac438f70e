package filters

import (
	"context"
	"fmt"

	"frame-bridge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// GrayscaleConverter reduces an RGBA (or RGB) frame to a single luminance
// channel.
type GrayscaleConverter struct{}

func NewGrayscaleConverter() *GrayscaleConverter {
	return &GrayscaleConverter{}
}

func (g *GrayscaleConverter) Name() string {
	return "grayscale_converter"
}

func (g *GrayscaleConverter) Apply(ctx context.Context, input *safe.Mat) (*safe.Mat, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var code gocv.ColorConversionCode
	switch input.Channels() {
	case 1:
		return input.Clone()
	case 3:
		code = gocv.ColorRGBToGray
	case 4:
		code = gocv.ColorRGBAToGray
	default:
		return nil, fmt.Errorf("unsupported channel count for grayscale conversion: %d", input.Channels())
	}

	if err := safe.ValidateColorConversion(input, code); err != nil {
		return nil, err
	}

	return cvtColor(input, gocv.MatTypeCV8UC1, code, "gray")
}

// cvtColor converts input into a freshly allocated Mat. On failure the
// destination is closed and nil is returned.
func cvtColor(input *safe.Mat, dstType gocv.MatType, code gocv.ColorConversionCode, tag string) (*safe.Mat, error) {
	dst, err := safe.NewTaggedMat(input.Rows(), input.Cols(), dstType, tag)
	if err != nil {
		return nil, fmt.Errorf("destination Mat creation failed: %w", err)
	}

	srcMat := input.GetMat()
	dstMat := dst.GetMat()
	if err := gocv.CvtColor(srcMat, &dstMat, code); err != nil {
		dst.Close()
		return nil, fmt.Errorf("color conversion %d failed: %w", code, err)
	}

	return dst, nil
}
