package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"frame-bridge/internal/logger"
	"frame-bridge/internal/opencv/conversion"
)

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{logger: log}
}

// Load decodes data into a Frame. Raw formats carry no geometry, so width and
// height must be supplied for them; the buffer length is left for the
// processor to validate. Encoded images use their own dimensions.
func (l *Loader) Load(data []byte, format Format, width, height int32) (*Frame, error) {
	l.logger.Debug("loading frame", map[string]interface{}{
		"format":     string(format),
		"size_bytes": len(data),
	})

	switch format {
	case FormatRawZstd:
		raw, err := decompress(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress raw frame: %w", err)
		}
		return l.loadRaw(raw, width, height)
	case FormatRaw:
		return l.loadRaw(data, width, height)
	case FormatBase64:
		return nil, fmt.Errorf("format %s is output only", format)
	default:
		return l.loadEncoded(data)
	}
}

func (l *Loader) loadRaw(data []byte, width, height int32) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raw frames need explicit dimensions, got %dx%d", width, height)
	}
	return &Frame{Pix: data, Width: width, Height: height}, nil
}

func (l *Loader) loadEncoded(data []byte) (*Frame, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	pix, width, height, err := conversion.ImageToRGBA(img)
	if err != nil {
		return nil, err
	}

	l.logger.Info("frame loaded", map[string]interface{}{
		"width":  width,
		"height": height,
		"format": format,
	})

	return &Frame{Pix: pix, Width: int32(width), Height: int32(height)}, nil
}
