package pipeline

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frame-bridge/internal/bridge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(w, h int32) *Frame {
	pix := make([]byte, w*h*4)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			px := pix[(y*w+x)*4:]
			if x >= w/2 {
				px[0], px[1], px[2] = 255, 255, 255
			}
			px[3] = 255
		}
	}
	return &Frame{Pix: pix, Width: w, Height: h}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"frame.png":            FormatPNG,
		"frame.JPG":            FormatJPEG,
		"frame.jpeg":           FormatJPEG,
		"frame.rgba":           FormatRaw,
		"frame.raw":            FormatRaw,
		"dir/frame.rgba.zst":   FormatRawZstd,
		"sample_processed.txt": FormatBase64,
		"frame":                FormatPNG,
	}

	for path, want := range tests {
		assert.Equal(t, want, DetectFormat(path), path)
	}
}

func TestRawZstdRoundTrip(t *testing.T) {
	frame := testFrame(16, 8)

	encoded, err := NewSaver(nil).Encode(frame, FormatRawZstd)
	require.NoError(t, err)
	assert.Less(t, len(encoded), len(frame.Pix))

	loaded, err := NewLoader(nil).Load(encoded, FormatRawZstd, 16, 8)
	require.NoError(t, err)
	assert.Equal(t, frame, loaded)
}

func TestLoadRawNeedsDimensions(t *testing.T) {
	_, err := NewLoader(nil).Load(make([]byte, 16), FormatRaw, 0, 0)
	assert.Error(t, err)
}

func TestLoadRejectsBase64Input(t *testing.T) {
	_, err := NewLoader(nil).Load([]byte("aGVsbG8="), FormatBase64, 1, 1)
	assert.Error(t, err)
}

func TestPNGRoundTrip(t *testing.T) {
	frame := testFrame(6, 4)

	encoded, err := NewSaver(nil).Encode(frame, FormatPNG)
	require.NoError(t, err)

	loaded, err := NewLoader(nil).Load(encoded, FormatPNG, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, frame, loaded)
}

func TestBase64Output(t *testing.T) {
	encoded, err := NewSaver(nil).Encode(testFrame(4, 4), FormatBase64)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encoded)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestEncodeRejectsShortFrame(t *testing.T) {
	_, err := NewSaver(nil).Encode(&Frame{Pix: make([]byte, 3), Width: 2, Height: 2}, FormatPNG)
	assert.Error(t, err)

	_, err = NewSaver(nil).Encode(nil, FormatPNG)
	assert.Error(t, err)
}

func TestRunnerEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.rgba.zst")
	out := filepath.Join(dir, "out.rgba")

	frame := testFrame(32, 32)
	encoded, err := NewSaver(nil).Encode(frame, FormatRawZstd)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, encoded, 0o644))

	runner := NewRunner(bridge.NewProcessor(nil), nil)
	result, err := runner.Run(RunOptions{InputPath: in, OutputPath: out, Width: 32, Height: 32})
	require.NoError(t, err)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, result.Pix, written)
	assert.Len(t, written, 32*32*4)
}

func TestRunnerSurfacesBridgeErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.rgba")
	require.NoError(t, os.WriteFile(in, make([]byte, 15), 0o644))

	runner := NewRunner(bridge.NewProcessor(nil), nil)
	_, err := runner.Run(RunOptions{InputPath: in, OutputPath: filepath.Join(dir, "out.png"), Width: 2, Height: 2})
	assert.ErrorIs(t, err, bridge.ErrSizeMismatch)

	_, statErr := os.Stat(filepath.Join(dir, "out.png"))
	assert.True(t, os.IsNotExist(statErr))
}
