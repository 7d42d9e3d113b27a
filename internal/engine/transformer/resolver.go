// Package transformer implements option resolution, coverage-plugin
// injection, the transform facade over the external compiler, and cache
// key derivation.
package transformer

import (
	"path/filepath"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolve produces the canonical compile options for one configured
// instance. Explicit options win outright; otherwise the loader supplies
// options discovered from the project config file. Missing both yields
// empty options, which the defaulting rules then fill in.
//
// The coverage block is stripped from the returned options and handed
// back separately for the injector's configuration.
func Resolve(explicit *domain.CompileOptions, loader ports.OptionsLoader, dir string) (*domain.CompileOptions, *domain.InstrumentConfig, error) {
	var opts *domain.CompileOptions

	switch {
	case explicit != nil:
		opts = explicit.Clone()
	case loader != nil:
		loaded, err := loader.Load(dir)
		if err != nil {
			return nil, nil, err
		}
		opts = loaded
	default:
		opts = &domain.CompileOptions{}
	}

	applyDefaults(opts, dir)

	instrument := opts.Coverage
	opts.Coverage = nil

	return opts, instrument, nil
}

// applyDefaults fills in unset fields. The rules only apply where the
// caller or config file left a field empty, except for the test-harness
// marker which is always forced.
func applyDefaults(opts *domain.CompileOptions, dir string) {
	// The fixed baseline applies only when no environment-based target
	// selection is configured.
	if opts.Target == "" && opts.Env == nil {
		opts.Target = domain.DefaultTarget
	}

	// Output is always marked as test-framework-generated, regardless of
	// caller input.
	opts.TestHarness = true

	if opts.SourceMaps == "" {
		opts.SourceMaps = domain.SourceMapInline
	}

	if opts.BasePath != "" && !filepath.IsAbs(opts.BasePath) {
		opts.BasePath = filepath.Join(dir, opts.BasePath)
	}
}

// guardConfig validates the construction inputs for a Transformer.
func guardConfig(cfg Config) error {
	if cfg.Compiler == nil {
		return domain.ErrNoCompiler
	}
	if cfg.Fingerprinter == nil {
		return zerr.New("no fingerprinter configured")
	}
	return nil
}
