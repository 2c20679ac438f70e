// Package bridge exposes the two entry points a host runtime calls: the
// edge-detection frame processor and the connectivity greeting.
//
// Frames are row-major RGBA buffers of exactly width*height*4 bytes. A
// rejected frame yields a nil result; a nil result must be read as "skip
// this frame", never as an empty image.
package bridge

import (
	"context"
	"errors"
	"time"

	"frame-bridge/internal/logger"
	"frame-bridge/internal/opencv/conversion"
	"frame-bridge/internal/processing/chain"
	"frame-bridge/internal/processing/filters"
)

// Greeting is the constant returned by StringFromJNI.
const Greeting = "Hello from native C++"

// StringFromJNI returns Greeting. It never fails.
func StringFromJNI() string {
	return Greeting
}

// Processor runs the edge pipeline. A single Processor may be shared by
// concurrent callers as long as no caller mutates its input buffer while a
// call is in flight.
type Processor struct {
	logger   logger.Logger
	pipeline *chain.ProcessingChain
	stats    *Stats
}

func NewProcessor(log logger.Logger) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	return &Processor{
		logger:   log,
		pipeline: filters.NewEdgePipeline(),
		stats:    &Stats{},
	}
}

func (p *Processor) StringFromJNI() string {
	return StringFromJNI()
}

func (p *Processor) Stats() StatsSnapshot {
	return p.stats.Snapshot()
}

// ExpectedLength returns width*height*4, or an invalid-argument error for
// non-positive or overflowing dimensions.
func ExpectedLength(width, height int32) (int, error) {
	n, err := conversion.ExpectedLength(int(width), int(height), conversion.RGBAChannels)
	if err != nil {
		return 0, &FrameError{Kind: ErrInvalidArgument, Width: width, Height: height, Err: err}
	}
	return n, nil
}

// ProcessFrame returns the RGBA edge map of buf, or nil if the frame was
// rejected or could not be processed. Failures are logged, not returned.
func (p *Processor) ProcessFrame(buf []byte, width, height int32) []byte {
	out, err := p.ProcessFrameErr(buf, width, height)
	if err != nil {
		return nil
	}
	return out
}

// ProcessFrameErr is ProcessFrame with the failure reason. On error the
// returned slice is always nil.
func (p *Processor) ProcessFrameErr(buf []byte, width, height int32) ([]byte, error) {
	start := time.Now()

	out, err := p.process(buf, width, height)
	if err != nil {
		var frameErr *FrameError
		if !errors.As(err, &frameErr) {
			frameErr = &FrameError{Kind: ErrProcessing, Width: width, Height: height, Err: err}
		}
		frameErr.Actual = len(buf)

		p.stats.recordFailure(frameErr.Kind)
		p.logger.Error("processFrame rejected frame", frameErr, frameErr.fields())
		return nil, frameErr
	}

	elapsed := time.Since(start)
	p.stats.recordSuccess(elapsed)
	p.logger.Debug("processFrame completed", map[string]interface{}{
		"width":      width,
		"height":     height,
		"bytes":      len(out),
		"elapsed_us": elapsed.Microseconds(),
	})

	return out, nil
}

func (p *Processor) process(buf []byte, width, height int32) ([]byte, error) {
	if buf == nil || width <= 0 || height <= 0 {
		return nil, &FrameError{Kind: ErrInvalidArgument, Width: width, Height: height}
	}

	expected, err := ExpectedLength(width, height)
	if err != nil {
		return nil, err
	}

	// Checked before any native allocation.
	if len(buf) != expected {
		return nil, &FrameError{Kind: ErrSizeMismatch, Width: width, Height: height, Expected: expected}
	}

	input, err := conversion.BytesToMat(buf, int(width), int(height), conversion.RGBAChannels)
	if err != nil {
		return nil, &FrameError{Kind: ErrAllocation, Width: width, Height: height, Expected: expected, Err: err}
	}
	defer input.Close()

	edges, err := p.pipeline.Execute(context.Background(), input)
	if err != nil {
		return nil, &FrameError{Kind: ErrProcessing, Width: width, Height: height, Expected: expected, Err: err}
	}
	defer edges.Close()

	out, err := conversion.MatToBytes(edges)
	if err != nil {
		return nil, &FrameError{Kind: ErrAllocation, Width: width, Height: height, Expected: expected, Err: err}
	}
	if len(out) != expected {
		return nil, &FrameError{Kind: ErrProcessing, Width: width, Height: height, Expected: expected,
			Err: errors.New("pipeline output has unexpected size")}
	}

	return out, nil
}
