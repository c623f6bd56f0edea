package terminal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixbisect/internal/core/ports"
)

// NodeID is the unique identifier for the resize source Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.ResizeSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResizeSource, error) {
			return NewSignalSource(os.Stdout), nil
		},
	})
}
