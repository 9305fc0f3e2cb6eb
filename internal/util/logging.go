// Package util provides common utilities including logging helpers,
// path resolution, and small generic helpers.
package util

import (
	"io"
	"log"
	"os"
)

// SetupLogging redirects the standard logger to a file so log lines never
// corrupt the terminal UI. Failure to open the file silences logging.
func SetupLogging(path string) io.Closer {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}
	log.SetOutput(f)
	return f
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
