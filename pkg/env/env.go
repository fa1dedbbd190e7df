// Package env reads raw process environment variables. Configuration that
// belongs to the service lives in pkg/config; this package covers the few
// knobs consulted before config is loaded (log format, port overrides).
package env

import (
	"os"
	"strings"
)

// Get returns the trimmed value of key, or fallback when the variable is
// unset or blank.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
