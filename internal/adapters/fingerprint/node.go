package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recast/internal/adapters/esbuild"
	"go.trai.ch/recast/internal/core/ports"
)

const NodeID graft.ID = "adapter.fingerprinter"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			esbuild.NodeID,
		},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(compiler.Version()), nil
		},
	})
}
