package ports

import (
	"context"

	"go.trai.ch/genreqs/internal/core/domain"
)

// CondaClient defines the interface for querying the conda tool.
//
//go:generate mockgen -source=conda.go -destination=mocks/mock_conda.go -package=mocks
type CondaClient interface {
	// ExportEnvironment returns the active environment's description as
	// YAML, scoped to explicitly requested packages.
	ExportEnvironment(ctx context.Context) ([]byte, error)

	// ListInstalled returns every installed package pinned to its
	// version, build hashes stripped, in the order conda reports them.
	ListInstalled(ctx context.Context) ([]domain.PinnedPackage, error)
}
