// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recast/internal/adapters/cache"
	_ "go.trai.ch/recast/internal/adapters/config"
	_ "go.trai.ch/recast/internal/adapters/esbuild"
	_ "go.trai.ch/recast/internal/adapters/fingerprint"
	_ "go.trai.ch/recast/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/recast/internal/app"
)
