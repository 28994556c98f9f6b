package reqfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/genreqs/internal/core/ports"
)

// NodeID is the unique identifier for the requirements writer Graft node.
const NodeID graft.ID = "adapter.writer"

func init() {
	graft.Register(graft.Node[ports.RequirementsWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RequirementsWriter, error) {
			return NewWriter(), nil
		},
	})
}
