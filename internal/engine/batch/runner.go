// Package batch implements the precompile runner that warms the transform
// cache for a set of source files.
package batch

import (
	"context"
	"os"
	"runtime"
	"sync"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/recast/internal/engine/transformer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Factory creates one transformer instance. The runner calls it once per
// worker so no instance ever sees concurrent transform calls.
type Factory func() (*transformer.Transformer, error)

// Summary reports the outcome of one batch run.
type Summary struct {
	Files       int
	Transformed int
	Cached      int
}

// Runner transforms a set of files with a bounded worker pool, consulting
// the cache store before delegating to the compiler.
type Runner struct {
	factory Factory
	store   ports.CacheStore
	logger  ports.Logger
	workers int
}

// NewRunner creates a Runner. Zero workers means one per CPU.
func NewRunner(factory Factory, store ports.CacheStore, logger ports.Logger, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		factory: factory,
		store:   store,
		logger:  logger,
		workers: workers,
	}
}

// Run processes all files under the given call context. The first failure
// cancels the remaining work.
func (r *Runner) Run(ctx context.Context, files []string, cc domain.CallContext) (Summary, error) {
	summary := Summary{Files: len(files)}
	if len(files) == 0 {
		return summary, nil
	}

	jobs := make(chan string)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for range min(r.workers, len(files)) {
		g.Go(func() error {
			tr, err := r.factory()
			if err != nil {
				return err
			}
			for file := range jobs {
				transformed, err := r.processFile(tr, file, cc)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to precompile"), "file", file)
				}
				mu.Lock()
				if transformed {
					summary.Transformed++
				} else {
					summary.Cached++
				}
				mu.Unlock()
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

// processFile reports whether the file was actually transformed (false on
// a cache hit).
func (r *Runner) processFile(tr *transformer.Transformer, file string, cc domain.CallContext) (bool, error) {
	data, err := os.ReadFile(file) //nolint:gosec // paths come from the manifest
	if err != nil {
		return false, zerr.Wrap(err, "failed to read source")
	}
	source := string(data)

	key, err := tr.CacheKey(source, file, cc)
	if err != nil {
		return false, err
	}

	hit, err := r.store.Get(key)
	if err != nil {
		return false, err
	}
	if hit != nil {
		r.logger.Info("cache hit: " + file)
		return false, nil
	}

	res, err := tr.TransformSync(source, file, cc)
	if err != nil {
		return false, err
	}

	if err := r.store.Put(key, *res); err != nil {
		return false, err
	}
	r.logger.Info("transformed: " + file)
	return true, nil
}
