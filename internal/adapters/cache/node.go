package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recast/internal/core/ports"
)

const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			store, err := NewStore("")
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
