// Package reqfile persists generated requirements to disk.
package reqfile

import (
	"os"

	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.RequirementsWriter on the local filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the requirements and overwrites the file at path in a
// single operation. There is no partial-write recovery: an interrupted
// run leaves a truncated or absent file.
func (w *Writer) Write(path string, reqs domain.Requirements) error {
	if err := os.WriteFile(path, []byte(reqs.Render()), domain.FilePerm); err != nil {
		return zerr.With(
			zerr.With(domain.ErrRequirementsWriteFailed, "cause", err.Error()),
			"path", path,
		)
	}
	return nil
}
