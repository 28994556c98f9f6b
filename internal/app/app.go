// Package app implements the application layer for genreqs.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/genreqs/internal/adapters/envspec"
	"go.trai.ch/genreqs/internal/core/domain"
	"go.trai.ch/genreqs/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	source ports.SpecSource
	conda  ports.CondaClient
	writer ports.RequirementsWriter
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new App instance.
func New(
	source ports.SpecSource,
	conda ports.CondaClient,
	writer ports.RequirementsWriter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		source: source,
		conda:  conda,
		writer: writer,
		logger: log,
		tracer: tracer,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// SpecPath is the environment description file. Empty means export
	// the active environment instead.
	SpecPath string

	// ActiveEnv is the name of the active conda environment, sourced
	// from CONDA_DEFAULT_ENV at the CLI boundary.
	ActiveEnv string

	// OutputPath is where the pinned requirements are written.
	OutputPath string
}

// Generate runs the pipeline: resolve the environment description, parse
// it into requested package names, look up installed versions, and write
// the pinned intersection. Stages run strictly in sequence; any stage
// error aborts the run.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	raw, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}

	spec, err := a.parse(ctx, raw)
	if err != nil {
		return err
	}

	index, err := a.lookup(ctx)
	if err != nil {
		return err
	}

	reqs, err := a.emit(ctx, spec, index, opts.OutputPath)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("wrote %d pinned requirements to %s", len(reqs), opts.OutputPath))
	return nil
}

func (a *App) resolve(ctx context.Context, opts GenerateOptions) ([]byte, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	raw, err := a.source.Resolve(ctx, domain.SourceRequest{
		SpecPath:  opts.SpecPath,
		ActiveEnv: opts.ActiveEnv,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return raw, nil
}

func (a *App) parse(ctx context.Context, raw []byte) (*domain.EnvironmentSpec, error) {
	_, span := a.tracer.Start(ctx, "parse")
	defer span.End()

	spec, err := envspec.Parse(raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("requested", len(spec.Requested))
	return spec, nil
}

func (a *App) lookup(ctx context.Context) (domain.PackageIndex, error) {
	ctx, span := a.tracer.Start(ctx, "list")
	defer span.End()

	pins, err := a.conda.ListInstalled(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("installed", len(pins))
	return domain.NewPackageIndex(pins), nil
}

func (a *App) emit(ctx context.Context, spec *domain.EnvironmentSpec, index domain.PackageIndex, path string) (domain.Requirements, error) {
	_, span := a.tracer.Start(ctx, "write")
	defer span.End()

	reqs := domain.BuildRequirements(spec.Requested, index)
	if err := a.writer.Write(path, reqs); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("count", len(reqs))
	span.SetAttribute("path", path)
	return reqs, nil
}
