package main

import "sync"

// errState is the process-wide last-error slot behind the C boundary.
// The Go API returns errors directly; this slot exists only because the
// C ABI reports failures as integer status codes.
type errState struct {
	mu  sync.Mutex
	msg string
	set bool
}

var lastError errState

// Set records a failure message, replacing any previous one.
func (e *errState) Set(msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msg = msg
	e.set = true
}

// Clear empties the slot. Called on entry to every boundary call so a
// stale message is never attributed to a later success.
func (e *errState) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msg = ""
	e.set = false
}

// Get returns the recorded message and whether one is present.
func (e *errState) Get() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.msg, e.set
}
