package main

/*
#include <stdint.h>
#include <stdlib.h>

// Plot configuration passed by value across the C boundary.
typedef struct plot_options {
	uint32_t width;         // output width in pixels
	uint32_t height;        // output height in pixels
	uint32_t marker_radius; // marker radius in pixels
	uint8_t  auto_range;    // nonzero: derive axis ranges from the data
	double   x_min;         // explicit ranges, used when auto_range == 0
	double   x_max;
	double   y_min;
	double   y_max;
} plot_options;
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/scatter"
)

// lastErrorC caches the C copy of the last error message so the pointer
// handed to callers stays valid until the next call into the library.
// Guarded by lastErrorCMu.
var (
	lastErrorC   *C.char
	lastErrorCMu sync.Mutex
)

// storeErrorC replaces the cached C string.
func storeErrorC(msg string) *C.char {
	lastErrorCMu.Lock()
	defer lastErrorCMu.Unlock()

	if lastErrorC != nil {
		C.free(unsafe.Pointer(lastErrorC))
		lastErrorC = nil
	}
	if msg != "" {
		lastErrorC = C.CString(msg)
	}
	return lastErrorC
}

// plot_scatter_png renders a scatter plot to a PNG file.
//
// path must be a NUL-terminated UTF-8 file path; xs and ys must point to
// arrays of at least n doubles. Returns 0 on success, 1 on failure; on
// failure the message is retrievable with plot_last_error_message.
//
//export plot_scatter_png
func plot_scatter_png(path *C.char, xs *C.double, ys *C.double, n C.size_t, opt C.plot_options) C.int32_t {
	lastError.Clear()

	if path == nil {
		return fail("path pointer is NULL")
	}
	if xs == nil {
		return fail("x data pointer is NULL")
	}
	if ys == nil {
		return fail("y data pointer is NULL")
	}

	xsSlice := unsafe.Slice((*float64)(unsafe.Pointer(xs)), int(n))
	ysSlice := unsafe.Slice((*float64)(unsafe.Pointer(ys)), int(n))

	return C.int32_t(renderScatter(C.GoString(path), xsSlice, ysSlice, goOptions(opt)))
}

// fail records a boundary error and returns the failure status.
func fail(msg string) C.int32_t {
	lastError.Set(msg)
	return 1
}

// renderScatter runs the render pipeline behind the C boundary. It
// returns 0 on success and 1 on failure, recording any failure in the
// process-wide error slot.
func renderScatter(path string, xs, ys []float64, opt scatter.Options) int32 {
	lastError.Clear()

	err := func() (err error) {
		// A panic must not unwind across the C boundary.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("internal panic: %v", r)
			}
		}()

		if len(xs) == 0 {
			return scatter.ErrEmptyInput
		}
		return scatter.RenderFile(path, xs, ys, opt)
	}()

	if err != nil {
		lastError.Set(err.Error())
		return 1
	}
	return 0
}

// plot_last_error_message returns the message of the most recent failing
// plot_scatter_png call, or NULL if the last call succeeded. The returned
// pointer is owned by the library; do not free it.
//
//export plot_last_error_message
func plot_last_error_message() *C.char {
	msg, ok := lastError.Get()
	if !ok {
		return storeErrorC("")
	}
	return storeErrorC(msg)
}

// plot_options_default returns the default plot configuration:
// 800x600 pixels, marker radius 5, automatic axis ranges.
//
//export plot_options_default
func plot_options_default() C.plot_options {
	return cOptions(scatter.DefaultOptions())
}

// goOptions converts the C options struct to the Go API form.
func goOptions(opt C.plot_options) scatter.Options {
	return scatter.Options{
		Width:        int(opt.width),
		Height:       int(opt.height),
		MarkerRadius: int(opt.marker_radius),
		AutoRange:    opt.auto_range != 0,
		XMin:         float64(opt.x_min),
		XMax:         float64(opt.x_max),
		YMin:         float64(opt.y_min),
		YMax:         float64(opt.y_max),
	}
}

// cOptions converts Go options to the C struct form.
func cOptions(opt scatter.Options) C.plot_options {
	auto := C.uint8_t(0)
	if opt.AutoRange {
		auto = 1
	}
	return C.plot_options{
		width:         C.uint32_t(opt.Width),
		height:        C.uint32_t(opt.Height),
		marker_radius: C.uint32_t(opt.MarkerRadius),
		auto_range:    auto,
		x_min:         C.double(opt.XMin),
		x_max:         C.double(opt.XMax),
		y_min:         C.double(opt.YMin),
		y_max:         C.double(opt.YMax),
	}
}

func main() {}
