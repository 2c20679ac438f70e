package filters

import (
	"context"
	"fmt"

	"frame-bridge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// CannyDetector produces a binary edge map (0 or 255) from a single-channel
// image.
type CannyDetector struct {
	low  float32
	high float32
}

func NewCannyDetector(low, high float32) *CannyDetector {
	return &CannyDetector{low: low, high: high}
}

func (c *CannyDetector) Name() string {
	return "canny_detector"
}

func (c *CannyDetector) Apply(ctx context.Context, input *safe.Mat) (*safe.Mat, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := safe.ValidateMatForOperation(input, c.Name()); err != nil {
		return nil, err
	}
	if input.Channels() != 1 {
		return nil, fmt.Errorf("canny requires a single channel image, got %d", input.Channels())
	}

	dst, err := safe.NewTaggedMat(input.Rows(), input.Cols(), gocv.MatTypeCV8UC1, "edges")
	if err != nil {
		return nil, fmt.Errorf("failed to create destination Mat: %w", err)
	}

	srcMat := input.GetMat()
	dstMat := dst.GetMat()
	if err := gocv.Canny(srcMat, &dstMat, c.low, c.high); err != nil {
		dst.Close()
		return nil, fmt.Errorf("canny %.1f/%.1f failed: %w", c.low, c.high, err)
	}

	return dst, nil
}
