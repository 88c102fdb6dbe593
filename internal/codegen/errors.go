package codegen

import "fmt"

// WriteError wraps an I/O failure while persisting the artifact, carrying the
// destination path for diagnostics.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write pin fragment to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
