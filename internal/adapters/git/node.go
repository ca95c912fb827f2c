package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rtcbuild/internal/core/ports"
)

// NodeID is the unique identifier for the submodule inspector Graft node.
const NodeID graft.ID = "adapter.git.inspector"

func init() {
	graft.Register(graft.Node[ports.SubmoduleInspector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SubmoduleInspector, error) {
			return NewInspector(), nil
		},
	})
}
