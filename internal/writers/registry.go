// internal/writers/registry.go
package writers

import (
	"fmt"
	"path/filepath"
	"strings"

	"protdom/internal/report"
)

// WriteFunc serializes the report tables to a file at path.
type WriteFunc func(path string, tables []report.Table) error

// Extension → writer registry. Register in init() blocks from the
// writer files.
var registry = map[string]WriteFunc{}

// Register installs a writer for a file extension (idempotent last-wins).
func Register(ext string, fn WriteFunc) { registry[ext] = fn }

// Write dispatches on the output file's extension.
func Write(path string, tables []report.Table) error {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := registry[ext]
	if !ok {
		return fmt.Errorf("writers: unsupported output extension %q (no writer registered)", ext)
	}
	return fn(path, tables)
}
