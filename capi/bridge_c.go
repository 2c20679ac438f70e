package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"frame-bridge/internal/bridge"
	"frame-bridge/internal/config"
	"frame-bridge/internal/logger"

	"github.com/sirupsen/logrus"
)

func main() {} // Required for c-shared build mode

var processor = newProcessor()

func newProcessor() *bridge.Processor {
	cfg := config.Load()

	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logger.ToLogrusLevel(cfg.LogLevel))
	if cfg.LogFormat == config.FormatJSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	return bridge.NewProcessor(logger.NewLogrus(base, "capi"))
}

// processFrameBytes maps a C pointer/length pair onto a Go slice view. A NULL
// pointer becomes a nil slice so the bridge reports it as invalid input.
func processFrameBytes(data unsafe.Pointer, length, width, height int32) []byte {
	var buf []byte
	if data != nil {
		if length < 0 {
			length = 0
		}
		buf = unsafe.Slice((*byte)(data), int(length))
	}
	return processor.ProcessFrame(buf, width, height)
}

//export process_frame
func process_frame(data unsafe.Pointer, length, width, height int32, out_length *int32) unsafe.Pointer {
	if out_length != nil {
		*out_length = 0
	}

	out := processFrameBytes(data, length, width, height)
	if out == nil {
		return nil
	}

	// cgo's C.malloc aborts on exhaustion rather than returning NULL
	ptr := C.malloc(C.size_t(len(out)))
	copy(unsafe.Slice((*byte)(ptr), len(out)), out)

	if out_length != nil {
		*out_length = int32(len(out))
	}
	return ptr
}

//export free_frame
func free_frame(ptr unsafe.Pointer) {
	if ptr != nil {
		C.free(ptr)
	}
}

//export string_from_jni
func string_from_jni() *C.char {
	return C.CString(bridge.StringFromJNI())
}

//export free_string
func free_string(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export bridge_stats_processed
func bridge_stats_processed() int64 {
	return processor.Stats().Processed
}

//export bridge_stats_failed
func bridge_stats_failed() int64 {
	return processor.Stats().Failed()
}
