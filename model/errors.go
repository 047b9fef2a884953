package model

import "fmt"

// SeedLoadError is returned when a seed file cannot be read at all.
// The simulation cannot start without it.
type SeedLoadError struct {
	Path string
	Err  error
}

func (e *SeedLoadError) Error() string {
	return fmt.Sprintf("failed to load seed %q: %v", e.Path, e.Err)
}

// Cause returns the underlying error for errors.Cause
func (e *SeedLoadError) Cause() error { return e.Err }

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *SeedLoadError) Unwrap() error { return e.Err }

// IoError is returned when a generation cannot be written to disk
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("failed to save generation to %q: %v", e.Path, e.Err)
}

// Cause returns the underlying error for errors.Cause
func (e *IoError) Cause() error { return e.Err }

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *IoError) Unwrap() error { return e.Err }
