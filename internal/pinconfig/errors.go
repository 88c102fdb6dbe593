package pinconfig

import "fmt"

// ParseError reports a malformed or incomplete pin configuration. Detail
// names the structural problem (missing field, wrong type, bad document).
type ParseError struct {
	Detail string
	Err    error // underlying decoder error, when there is one
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid pin configuration: %s: %v", e.Detail, e.Err)
	}
	return "invalid pin configuration: " + e.Detail
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidTargetError reports a document whose 'generate' output path is
// empty. The loader rejects it up front; the emitter re-checks before
// producing any output, so no file I/O is ever attempted for such a document.
type InvalidTargetError struct{}

func (e *InvalidTargetError) Error() string {
	return "configuration declares no 'generate' output path"
}

// BoardNotFoundError reports a lookup of a board identifier the document does
// not declare. Known carries the identifiers that are present, sorted, so the
// caller's diagnostic can name them.
type BoardNotFoundError struct {
	ID    string
	Known []string
}

func (e *BoardNotFoundError) Error() string {
	return fmt.Sprintf("board %q not found in configuration (known boards: %v)", e.ID, e.Known)
}
