package ports

import "go.trai.ch/genreqs/internal/core/domain"

// RequirementsWriter defines the interface for persisting the generated
// requirements.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type RequirementsWriter interface {
	// Write renders the requirements and overwrites the file at path.
	Write(path string, reqs domain.Requirements) error
}
