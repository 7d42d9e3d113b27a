// Package ports defines the core interfaces for the transformer.
package ports

import (
	"context"

	"go.trai.ch/recast/internal/core/domain"
)

// Compiler is the external transform engine. Its failures are propagated
// to callers unchanged; this module adds no retries or interpretation.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// TransformSync compiles source into an executable module, blocking
	// until the engine returns.
	TransformSync(source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error)

	// Transform is the asynchronous variant. The context is passed through
	// to the engine; cancellation semantics beyond that are the engine's
	// concern.
	Transform(ctx context.Context, source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error)

	// Version identifies the engine build. It is folded into cache keys so
	// an engine upgrade invalidates previously compiled artifacts.
	Version() string
}
