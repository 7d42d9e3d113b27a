// Package app implements the application layer for recast.
package app

import (
	"context"
	"os"

	"go.trai.ch/recast/internal/adapters/manifest"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/recast/internal/engine/batch"
	"go.trai.ch/recast/internal/engine/transformer"
	"go.trai.ch/zerr"
)

// App wires the options loader, compiler, fingerprinter, and cache store
// behind the CLI commands.
type App struct {
	loader        ports.OptionsLoader
	compiler      ports.Compiler
	fingerprinter ports.Fingerprinter
	store         ports.CacheStore
	logger        ports.Logger
	dir           string
}

// New creates a new App instance rooted in the current directory.
func New(
	loader ports.OptionsLoader,
	compiler ports.Compiler,
	fingerprinter ports.Fingerprinter,
	store ports.CacheStore,
	logger ports.Logger,
) *App {
	return &App{
		loader:        loader,
		compiler:      compiler,
		fingerprinter: fingerprinter,
		store:         store,
		logger:        logger,
		dir:           ".",
	}
}

// WithCompiler swaps the transform engine, e.g. for an out-of-process
// compiler command.
func (a *App) WithCompiler(c ports.Compiler) *App {
	a.compiler = c
	return a
}

// WithDir changes the directory used for config discovery.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// NewTransformer resolves options and returns a fresh configured instance.
func (a *App) NewTransformer() (*transformer.Transformer, error) {
	return transformer.New(transformer.Config{
		Loader:        a.loader,
		Dir:           a.dir,
		Compiler:      a.compiler,
		Fingerprinter: a.fingerprinter,
	})
}

// TransformFile transforms one source file. The async flag selects the
// asynchronous delegation path, which always emits ES modules.
func (a *App) TransformFile(ctx context.Context, path string, cc domain.CallContext, async bool) (*domain.TransformResult, error) {
	tr, err := a.NewTransformer()
	if err != nil {
		return nil, err
	}

	source, err := readSource(path)
	if err != nil {
		return nil, err
	}

	if async {
		return tr.Transform(ctx, source, path, cc)
	}
	return tr.TransformSync(source, path, cc)
}

// DeriveKey computes the cache key for one source file.
func (a *App) DeriveKey(path string, cc domain.CallContext) (string, error) {
	tr, err := a.NewTransformer()
	if err != nil {
		return "", err
	}

	source, err := readSource(path)
	if err != nil {
		return "", err
	}

	return tr.CacheKey(source, path, cc)
}

// Batch precompiles the sources listed in the manifest, warming the
// transform cache.
func (a *App) Batch(ctx context.Context, manifestPath string, workers int) (batch.Summary, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return batch.Summary{}, err
	}

	files, err := m.ResolveSources(a.dir)
	if err != nil {
		return batch.Summary{}, err
	}

	cc := domain.CallContext{
		WantsCoverage:     m.Coverage,
		SupportsStaticESM: m.ESM,
	}

	runner := batch.NewRunner(a.NewTransformer, a.store, a.logger, workers)
	return runner.Run(ctx, files, cc)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}
	return string(data), nil
}
