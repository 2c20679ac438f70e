package filters

import (
	"context"
	"fmt"
	"image"

	"frame-bridge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

type GaussianFilter struct {
	kernelSize int
	sigma      float64
}

func NewGaussianFilter(kernelSize int, sigma float64) *GaussianFilter {
	return &GaussianFilter{kernelSize: kernelSize, sigma: sigma}
}

func (g *GaussianFilter) Name() string {
	return "gaussian_filter"
}

func (g *GaussianFilter) Apply(ctx context.Context, input *safe.Mat) (*safe.Mat, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := safe.ValidateMatForOperation(input, g.Name()); err != nil {
		return nil, err
	}

	dst, err := safe.NewTaggedMat(input.Rows(), input.Cols(), input.Type(), "blurred")
	if err != nil {
		return nil, fmt.Errorf("failed to create destination Mat: %w", err)
	}

	srcMat := input.GetMat()
	dstMat := dst.GetMat()

	// sigmaY of 0 makes OpenCV reuse sigmaX
	ksize := image.Point{X: g.kernelSize, Y: g.kernelSize}
	if err := gocv.GaussianBlur(srcMat, &dstMat, ksize, g.sigma, 0, gocv.BorderDefault); err != nil {
		dst.Close()
		return nil, fmt.Errorf("gaussian blur %dx%d failed: %w", g.kernelSize, g.kernelSize, err)
	}

	return dst, nil
}
