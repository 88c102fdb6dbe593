package codegen

import (
	"os"

	"github.com/lure23/pingen/internal/configpaths"
)

// WriteArtifact persists the rendered fragment to path, replacing any
// previous artifact. Parent directories are created as needed.
func WriteArtifact(path string, data []byte) error {
	if err := configpaths.EnsureDir(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
