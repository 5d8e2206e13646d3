// Package main builds the c-shared boundary of the scatter renderer.
//
// Build it as a shared library:
//
//	go build -buildmode=c-shared -o libscatter.so ./capi
//
// The generated libscatter.h declares the exported entry points:
//
//	int32_t plot_scatter_png(char* path, double* xs, double* ys,
//	                         size_t n, plot_options opt);
//	char*   plot_last_error_message(void);
//	plot_options plot_options_default(void);
//
// plot_scatter_png returns 0 on success and 1 on failure. After a failing
// call, plot_last_error_message returns a NUL-terminated description of
// the failure; after a successful call it returns NULL. The returned
// pointer is owned by the library and valid until the next call into it.
//
// The last-error slot is process-wide and mutex-guarded: concurrent
// failing calls cannot corrupt it, but a message is only attributable to
// a failing call if no other call happens before it is read.
package main
