package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recast/internal/core/ports"
)

const NodeID graft.ID = "adapter.options_loader"

func init() {
	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.OptionsLoader, error) {
			return &FileLoader{Filename: DefaultFilename}, nil
		},
	})
}
