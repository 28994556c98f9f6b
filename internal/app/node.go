package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/genreqs/internal/adapters/conda"
	"go.trai.ch/genreqs/internal/adapters/logger"
	"go.trai.ch/genreqs/internal/adapters/reqfile"
	"go.trai.ch/genreqs/internal/adapters/source"
	"go.trai.ch/genreqs/internal/adapters/telemetry"
	"go.trai.ch/genreqs/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the command layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			conda.NodeID,
			reqfile.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	specSource, err := graft.Dep[ports.SpecSource](ctx)
	if err != nil {
		return nil, err
	}

	client, err := graft.Dep[ports.CondaClient](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.RequirementsWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(specSource, client, writer, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
