package filters

import (
	"frame-bridge/internal/processing/chain"
)

// Fixed parameters of the edge pipeline.
const (
	GaussianKernelSize = 5
	GaussianSigma      = 1.5
	CannyLowThreshold  = 80.0
	CannyHighThreshold = 160.0
)

// NewEdgePipeline returns the grayscale, blur, Canny, RGBA chain applied to
// every frame.
func NewEdgePipeline() *chain.ProcessingChain {
	return chain.NewProcessingChain(
		NewGrayscaleConverter(),
		NewGaussianFilter(GaussianKernelSize, GaussianSigma),
		NewCannyDetector(CannyLowThreshold, CannyHighThreshold),
		NewRGBAExpander(),
	)
}
