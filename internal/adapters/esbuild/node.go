package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recast/internal/core/ports"
)

const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Compiler, error) {
			return New(), nil
		},
	})
}
