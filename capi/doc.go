// Package main builds the frame bridge as a C shared library so a host
// runtime (a JNI shim, a Python ctypes loader, a C test harness) can call it
// without knowing anything about Go.
//
// # Build Instructions
//
//	go build -buildmode=c-shared -o libframebridge.so ./capi/
//
// This generates libframebridge.so and libframebridge.h.
//
// # C API Usage
//
//	#include "libframebridge.h"
//
//	int32_t out_len = 0;
//	uint8_t *edges = process_frame(rgba, len, width, height, &out_len);
//	if (edges == NULL) {
//	    // skip this frame
//	} else {
//	    render(edges, out_len);
//	    free_frame(edges);
//	}
//
//	char *msg = string_from_jni();
//	puts(msg);
//	free_string(msg);
//
// Ownership of every non-NULL pointer returned by this library passes to
// the caller, who must release it with the matching free function.
package main
