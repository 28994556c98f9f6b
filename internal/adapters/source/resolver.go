// Package source resolves the raw environment description, either from a
// file or from the active conda environment.
package source

import (
	"context"
	"fmt"

	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/genreqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.SpecSource.
type Resolver struct {
	fs     FileSystem
	conda  ports.CondaClient
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(fsys FileSystem, conda ports.CondaClient, logger ports.Logger) *Resolver {
	return &Resolver{
		fs:     fsys,
		conda:  conda,
		logger: logger,
	}
}

// Resolve returns the environment description named by the request. A
// non-empty SpecPath selects file mode. Otherwise the active environment
// is exported, which requires an active environment other than base.
func (r *Resolver) Resolve(ctx context.Context, req domain.SourceRequest) ([]byte, error) {
	if req.SpecPath != "" {
		// Existence is stat-checked at the CLI boundary; this guards
		// races and permission failures.
		raw, err := r.fs.ReadFile(req.SpecPath)
		if err != nil {
			return nil, zerr.With(
				zerr.With(domain.ErrSpecReadFailed, "cause", err.Error()),
				"path", req.SpecPath,
			)
		}
		return raw, nil
	}

	switch req.ActiveEnv {
	case "":
		return nil, domain.ErrNoActiveEnvironment
	case domain.BaseEnvName:
		return nil, domain.ErrBaseEnvironment
	}

	r.logger.Info(fmt.Sprintf("retrieving conda environment: %s", req.ActiveEnv))
	return r.conda.ExportEnvironment(ctx)
}
