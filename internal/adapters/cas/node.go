package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mist/internal/core/ports"
)

// NodeID is the unique identifier for the export store Graft node.
const NodeID graft.ID = "adapter.export_store"

func init() {
	graft.Register(graft.Node[ports.ExportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExportStore, error) {
			return NewStore(), nil
		},
	})
}
