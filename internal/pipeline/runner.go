package pipeline

import (
	"fmt"
	"os"

	"frame-bridge/internal/bridge"
	"frame-bridge/internal/logger"
)

// Runner loads a frame from disk, runs it through the bridge and writes the
// edge map back out.
type Runner struct {
	processor *bridge.Processor
	loader    *Loader
	saver     *Saver
	logger    logger.Logger
}

func NewRunner(processor *bridge.Processor, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		processor: processor,
		loader:    NewLoader(log),
		saver:     NewSaver(log),
		logger:    log,
	}
}

type RunOptions struct {
	InputPath  string
	OutputPath string
	Width      int32
	Height     int32
}

func (r *Runner) Run(opts RunOptions) (*Frame, error) {
	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	in, err := r.loader.Load(data, DetectFormat(opts.InputPath), opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	out, err := r.Process(in)
	if err != nil {
		return nil, err
	}

	encoded, err := r.saver.Encode(out, DetectFormat(opts.OutputPath))
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(opts.OutputPath, encoded, 0o644); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	r.logger.Info("frame written", map[string]interface{}{
		"path":   opts.OutputPath,
		"width":  out.Width,
		"height": out.Height,
		"bytes":  len(encoded),
	})

	return out, nil
}

func (r *Runner) Process(in *Frame) (*Frame, error) {
	pix, err := r.processor.ProcessFrameErr(in.Pix, in.Width, in.Height)
	if err != nil {
		return nil, fmt.Errorf("processing frame: %w", err)
	}
	return &Frame{Pix: pix, Width: in.Width, Height: in.Height}, nil
}
