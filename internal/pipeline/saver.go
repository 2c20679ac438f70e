package pipeline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"

	"frame-bridge/internal/logger"
	"frame-bridge/internal/opencv/conversion"
)

type Saver struct {
	logger logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	if log == nil {
		log = logger.Nop()
	}
	return &Saver{logger: log}
}

// Encode serializes a frame. FormatBase64 is a base64 PNG with no data-URL
// prefix, the form the web preview loads.
func (s *Saver) Encode(frame *Frame, format Format) ([]byte, error) {
	if frame == nil {
		return nil, fmt.Errorf("no frame to save")
	}

	s.logger.Debug("encoding frame", map[string]interface{}{
		"format": string(format),
		"width":  frame.Width,
		"height": frame.Height,
	})

	switch format {
	case FormatRaw:
		out := make([]byte, len(frame.Pix))
		copy(out, frame.Pix)
		return out, nil
	case FormatRawZstd:
		return compress(frame.Pix), nil
	}

	img, err := conversion.RGBAToImage(frame.Pix, int(frame.Width), int(frame.Height))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	case FormatBase64:
		err = png.Encode(&buf, img)
		if err == nil {
			encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
			return []byte(encoded + "\n"), nil
		}
	default:
		err = png.Encode(&buf, img)
	}

	if err != nil {
		s.logger.Error("frame encoding failed", err, map[string]interface{}{
			"format": string(format),
		})
		return nil, err
	}

	return buf.Bytes(), nil
}
