package ports

import "go.trai.ch/recast/internal/core/domain"

// CacheStore persists transform results keyed by derived cache keys so a
// batch run can skip recompilation of unchanged inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Get retrieves a cached result. It returns nil without error when the
	// key is absent.
	Get(key string) (*domain.TransformResult, error)

	// Put stores a result under the given key.
	Put(key string, res domain.TransformResult) error
}
