package filters

import (
	"context"

	"frame-bridge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// RGBAExpander replicates a single channel into R, G and B. Alpha is
// whatever OpenCV writes for GRAY2RGBA.
type RGBAExpander struct{}

func NewRGBAExpander() *RGBAExpander {
	return &RGBAExpander{}
}

func (e *RGBAExpander) Name() string {
	return "rgba_expander"
}

func (e *RGBAExpander) Apply(ctx context.Context, input *safe.Mat) (*safe.Mat, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := safe.ValidateColorConversion(input, gocv.ColorGrayToRGBA); err != nil {
		return nil, err
	}

	return cvtColor(input, gocv.MatTypeCV8UC4, gocv.ColorGrayToRGBA, "edges_rgba")
}
