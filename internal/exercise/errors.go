package exercise

import "errors"

// Sentinel error kinds. Callers distinguish failure classes with errors.Is;
// every error returned by this package wraps exactly one of these.
var (
	// ErrValidation indicates a missing or invalid required field.
	ErrValidation = errors.New("validation error")

	// ErrFormat indicates a structured field that does not parse
	// (malformed section, multi-letter variant, absent template field).
	ErrFormat = errors.New("format error")

	// ErrNotFound indicates a referenced file (e.g. the template) is missing.
	ErrNotFound = errors.New("not found")
)
