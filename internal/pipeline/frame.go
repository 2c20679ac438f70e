package pipeline

import (
	"path/filepath"
	"strings"
)

// Frame is a row-major RGBA pixel buffer with its declared geometry.
type Frame struct {
	Pix    []byte
	Width  int32
	Height int32
}

type Format string

const (
	FormatPNG     Format = "png"
	FormatJPEG    Format = "jpeg"
	FormatRaw     Format = "rgba"
	FormatRawZstd Format = "rgba.zst"
	FormatBase64  Format = "base64-png"
)

// DetectFormat picks a frame format from a file name. Unknown extensions
// default to PNG.
func DetectFormat(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".rgba.zst"), strings.HasSuffix(name, ".raw.zst"):
		return FormatRawZstd
	case strings.HasSuffix(name, ".rgba"), strings.HasSuffix(name, ".raw"):
		return FormatRaw
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return FormatJPEG
	case strings.HasSuffix(name, ".txt"), strings.HasSuffix(name, ".b64"):
		return FormatBase64
	default:
		return FormatPNG
	}
}
