package ports

import (
	"context"

	"go.trai.ch/genreqs/internal/core/domain"
)

// SpecSource defines the interface for obtaining the raw environment
// description.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SpecSource interface {
	// Resolve returns the environment description named by the request,
	// either read from a file or exported from the active environment.
	Resolve(ctx context.Context, req domain.SourceRequest) ([]byte, error)
}
