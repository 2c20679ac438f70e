package bridge

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"frame-bridge/internal/processing/chain"
	"frame-bridge/internal/processing/filters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level  string
	msg    string
	err    error
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) add(e logEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	r.add(logEntry{level: "debug", msg: msg, fields: fields})
}

func (r *recordingLogger) Info(msg string, fields map[string]interface{}) {
	r.add(logEntry{level: "info", msg: msg, fields: fields})
}

func (r *recordingLogger) Warning(msg string, fields map[string]interface{}) {
	r.add(logEntry{level: "warn", msg: msg, fields: fields})
}

func (r *recordingLogger) Error(msg string, err error, fields map[string]interface{}) {
	r.add(logEntry{level: "error", msg: msg, err: err, fields: fields})
}

func (r *recordingLogger) errors() []logEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []logEntry
	for _, e := range r.entries {
		if e.level == "error" {
			out = append(out, e)
		}
	}
	return out
}

func solid(w, h int, v byte) []byte {
	return bytes.Repeat([]byte{v}, w*h*4)
}

// halfAndHalf is an opaque RGBA frame, black on the left and white on the
// right.
func halfAndHalf(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := buf[(y*w+x)*4:]
			if x >= w/2 {
				px[0], px[1], px[2] = 255, 255, 255
			}
			px[3] = 255
		}
	}
	return buf
}

func TestStringFromJNI(t *testing.T) {
	assert.Equal(t, "Hello from native C++", StringFromJNI())
	assert.Equal(t, Greeting, NewProcessor(nil).StringFromJNI())
}

func TestProcessFrameOutputLength(t *testing.T) {
	p := NewProcessor(nil)

	sizes := [][2]int32{{1, 1}, {2, 2}, {3, 7}, {16, 9}, {64, 48}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		out := p.ProcessFrame(solid(int(w), int(h), 0x40), w, h)
		require.NotNil(t, out, "%dx%d", w, h)
		assert.Len(t, out, int(w*h*4), "%dx%d", w, h)
	}
}

func TestProcessFrameUniformWhite(t *testing.T) {
	p := NewProcessor(nil)

	out := p.ProcessFrame(solid(2, 2, 0xFF), 2, 2)
	require.Len(t, out, 16)

	for i := 0; i < 4; i++ {
		px := out[i*4 : i*4+4]
		assert.Equal(t, byte(0), px[0])
		assert.Equal(t, px[0], px[1])
		assert.Equal(t, px[0], px[2])
	}
}

func TestProcessFrameDetectsEdges(t *testing.T) {
	p := NewProcessor(nil)

	out := p.ProcessFrame(halfAndHalf(32, 32), 32, 32)
	require.Len(t, out, 32*32*4)

	edges := 0
	for i := 0; i < len(out); i += 4 {
		assert.Equal(t, out[i], out[i+1])
		assert.Equal(t, out[i], out[i+2])
		if out[i] == 255 {
			edges++
		}
	}
	assert.Positive(t, edges)
}

func TestProcessFrameDeterministic(t *testing.T) {
	p := NewProcessor(nil)
	in := halfAndHalf(40, 30)

	first := p.ProcessFrame(in, 40, 30)
	second := NewProcessor(nil).ProcessFrame(in, 40, 30)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestProcessFrameDoesNotMutateInput(t *testing.T) {
	in := halfAndHalf(8, 8)
	orig := append([]byte(nil), in...)

	require.NotNil(t, NewProcessor(nil).ProcessFrame(in, 8, 8))
	assert.Equal(t, orig, in)
}

func TestProcessFrameRejections(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		width  int32
		height int32
		kind   error
	}{
		{"nil buffer", nil, 2, 2, ErrInvalidArgument},
		{"zero width", solid(2, 2, 0), 0, 2, ErrInvalidArgument},
		{"negative height", solid(2, 2, 0), 2, -1, ErrInvalidArgument},
		{"both non-positive", solid(2, 2, 0), -3, 0, ErrInvalidArgument},
		{"one byte short", make([]byte, 15), 2, 2, ErrSizeMismatch},
		{"one byte long", make([]byte, 17), 2, 2, ErrSizeMismatch},
		{"empty buffer", []byte{}, 2, 2, ErrSizeMismatch},
		{"three channel buffer", make([]byte, 12), 2, 2, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			p := NewProcessor(log)

			assert.Nil(t, p.ProcessFrame(tt.buf, tt.width, tt.height))

			out, err := p.ProcessFrameErr(tt.buf, tt.width, tt.height)
			assert.Nil(t, out)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var frameErr *FrameError
			require.True(t, errors.As(err, &frameErr))
			assert.Equal(t, len(tt.buf), frameErr.Actual)

			assert.Len(t, log.errors(), 2, "every failure is logged")
		})
	}
}

func TestSizeMismatchLogsExpectedAndActual(t *testing.T) {
	log := &recordingLogger{}
	p := NewProcessor(log)

	assert.Nil(t, p.ProcessFrame(make([]byte, 15), 2, 2))

	entries := log.errors()
	require.Len(t, entries, 1)
	assert.Equal(t, 16, entries[0].fields["expected"])
	assert.Equal(t, 15, entries[0].fields["actual"])
	assert.ErrorIs(t, entries[0].err, ErrSizeMismatch)
	assert.Contains(t, entries[0].err.Error(), "got 15 bytes, expected 16")
}

func TestSizeMismatchWithHugeGeometry(t *testing.T) {
	p := NewProcessor(nil)

	out, err := p.ProcessFrameErr(make([]byte, 16), 1<<20, 1<<20)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	var frameErr *FrameError
	require.True(t, errors.As(err, &frameErr))
	assert.Equal(t, 4<<40, frameErr.Expected)
	assert.Equal(t, 16, frameErr.Actual)
}

func TestPipelineFailureIsNotSuccess(t *testing.T) {
	log := &recordingLogger{}
	p := NewProcessor(log)
	p.pipeline = chain.NewProcessingChain(
		filters.NewGrayscaleConverter(),
		filters.NewGaussianFilter(4, 1.0),
	)

	out, err := p.ProcessFrameErr(solid(4, 4, 0x80), 4, 4)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrProcessing)
	assert.Contains(t, err.Error(), "step gaussian_filter failed")

	assert.Nil(t, p.ProcessFrame(solid(4, 4, 0x80), 4, 4))
	assert.Equal(t, int64(2), p.Stats().PipelineErrors)
	assert.Len(t, log.errors(), 2)
}

func TestExpectedLength(t *testing.T) {
	n, err := ExpectedLength(640, 480)
	require.NoError(t, err)
	assert.Equal(t, 640*480*4, n)

	_, err = ExpectedLength(0, 480)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStatsSnapshot(t *testing.T) {
	p := NewProcessor(nil)

	p.ProcessFrame(solid(2, 2, 1), 2, 2)
	p.ProcessFrame(solid(2, 2, 1), 2, 2)
	p.ProcessFrame(nil, 2, 2)
	p.ProcessFrame(make([]byte, 3), 2, 2)

	snap := p.Stats()
	assert.Equal(t, int64(2), snap.Processed)
	assert.Equal(t, int64(1), snap.InvalidArgs)
	assert.Equal(t, int64(1), snap.SizeMismatches)
	assert.Equal(t, int64(2), snap.Failed())
}

func TestProcessFrameConcurrent(t *testing.T) {
	p := NewProcessor(nil)
	in := halfAndHalf(24, 24)
	want := p.ProcessFrame(in, 24, 24)
	require.NotNil(t, want)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.ProcessFrame(in, 24, 24)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int64(9), p.Stats().Processed)
}
