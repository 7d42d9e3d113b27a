package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recast/internal/adapters/cache"
	"go.trai.ch/recast/internal/adapters/config"
	"go.trai.ch/recast/internal/adapters/esbuild"
	"go.trai.ch/recast/internal/adapters/fingerprint"
	"go.trai.ch/recast/internal/adapters/logger"
	"go.trai.ch/recast/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by
// the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			esbuild.NodeID,
			fingerprint.NodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.OptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, compiler, fingerprinter, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
