package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/genreqs/internal/adapters/shell"
	"go.trai.ch/genreqs/internal/core/ports"
)

// NodeID is the unique identifier for the conda client Graft node.
const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.CondaClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.CondaClient, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(runner), nil
		},
	})
}
