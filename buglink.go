// Package buglink turns in-code failures into pre-filled GitHub new-issue
// links and human-readable diagnostics. Templates are registered once via a
// [Builder]; failure sites then generate reports through an explicit
// [Handle] or through the process-wide ambient configuration.
package buglink

import "sync/atomic"

var ambient atomic.Pointer[Handle]

// Installed returns the ambient handle installed by [Builder.Install], or
// nil before installation.
func Installed() *Handle {
	return ambient.Load()
}

// Report generates a bug report through the ambient handle: it writes the
// diagnostic block for the calling site and returns the issue URL. It
// returns "" when no handle is installed or generation fails; failures never
// propagate on this path, so it is safe in any failure handler.
func Report(name string, params ...Param) string {
	h := ambient.Load()
	if h == nil {
		return ""
	}

	file, line := callSite(1)

	url, err := h.ReportAt(file, line, name, params...)
	if err != nil {
		return ""
	}

	return url
}

// URL generates an issue URL through the ambient handle without writing a
// diagnostic. Unlike [Report] it surfaces failures, including
// ErrNotInitialized when no handle is installed.
func URL(name string, params ...Param) (string, error) {
	h := ambient.Load()
	if h == nil {
		return "", ErrNotInitialized
	}

	return h.URL(name, params...)
}
