package transformer

import (
	"context"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
)

// Config carries the construction inputs for a Transformer.
type Config struct {
	// Options are the explicit compile options. When nil, Loader is
	// consulted instead.
	Options *domain.CompileOptions
	// Loader discovers options from the project config file. Only used
	// when Options is nil.
	Loader ports.OptionsLoader
	// Dir is the working directory for config discovery and base-path
	// resolution.
	Dir string
	// Compiler is the external transform engine.
	Compiler ports.Compiler
	// Fingerprinter computes base cache fingerprints.
	Fingerprinter ports.Fingerprinter
}

// Transformer is one configured instance of the transform facade. It is
// created once per worker and must not receive concurrent calls: the
// plugin list of the shared options is mutated without synchronization,
// matching the host framework's one-file-at-a-time worker semantics.
type Transformer struct {
	opts          *domain.CompileOptions
	instrument    *domain.InstrumentConfig
	canInstrument bool
	compiler      ports.Compiler
	fingerprinter ports.Fingerprinter
}

// New resolves the compile options and returns a configured instance.
func New(cfg Config) (*Transformer, error) {
	if err := guardConfig(cfg); err != nil {
		return nil, err
	}

	opts, instrument, err := Resolve(cfg.Options, cfg.Loader, cfg.Dir)
	if err != nil {
		return nil, err
	}

	return &Transformer{
		opts:          opts,
		instrument:    instrument,
		canInstrument: instrument != nil && instrument.Enabled,
		compiler:      cfg.Compiler,
		fingerprinter: cfg.Fingerprinter,
	}, nil
}

// Options exposes the shared resolved options of this instance.
func (t *Transformer) Options() *domain.CompileOptions {
	return t.opts
}

// TransformSync compiles source, honoring the caller's static-ESM support
// flag for the module kind. Compiler failures are returned unchanged.
func (t *Transformer) TransformSync(source, filename string, cc domain.CallContext) (*domain.TransformResult, error) {
	t.injectCoverage(cc)

	overlay := t.opts.Clone()
	overlay.Module = moduleKind(cc.SupportsStaticESM)

	return t.compiler.TransformSync(source, filename, overlay)
}

// Transform is the asynchronous variant. The module kind is always es6
// here: the async loading path consumes ES modules regardless of the
// caller's static-ESM support flag.
func (t *Transformer) Transform(ctx context.Context, source, filename string, cc domain.CallContext) (*domain.TransformResult, error) {
	t.injectCoverage(cc)

	overlay := t.opts.Clone()
	overlay.Module = domain.ModuleES6

	return t.compiler.Transform(ctx, source, filename, overlay)
}

// injectCoverage appends the coverage plugin descriptor to the shared
// options when this instance can instrument and the current run collects
// coverage. The descriptor is appended at most once per instance; the
// mutation persists for subsequent calls.
func (t *Transformer) injectCoverage(cc domain.CallContext) {
	if !cc.WantsCoverage || !t.canInstrument {
		return
	}
	if t.opts.HasPlugin(domain.CoveragePluginName) {
		return
	}
	t.opts.AppendPlugin(domain.PluginDescriptor{
		Name:    domain.CoveragePluginName,
		Options: t.instrument.PluginOptions(),
	})
}

func moduleKind(supportsStaticESM bool) domain.ModuleKind {
	if supportsStaticESM {
		return domain.ModuleES6
	}
	return domain.ModuleCommonJS
}
