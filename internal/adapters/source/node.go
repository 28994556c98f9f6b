package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/genreqs/internal/adapters/conda"
	"go.trai.ch/genreqs/internal/adapters/logger"
	"go.trai.ch/genreqs/internal/core/ports"
)

// NodeID is the unique identifier for the spec source Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.SpecSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{conda.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SpecSource, error) {
			client, err := graft.Dep[ports.CondaClient](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(NewOSFS(), client, log), nil
		},
	})
}
