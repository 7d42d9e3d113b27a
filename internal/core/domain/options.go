// Package domain defines the core types for the recast transformer.
package domain

// ModuleKind selects the module shape of the emitted code.
type ModuleKind string

const (
	// ModuleES6 requests ECMAScript-module output.
	ModuleES6 ModuleKind = "es6"
	// ModuleCommonJS requests commonJS-module output.
	ModuleCommonJS ModuleKind = "commonjs"
)

// SourceMapMode controls how source maps are emitted.
type SourceMapMode string

const (
	// SourceMapInline embeds the map into the emitted code.
	SourceMapInline SourceMapMode = "inline"
	// SourceMapExternal returns the map alongside the code.
	SourceMapExternal SourceMapMode = "external"
	// SourceMapNone disables source map generation.
	SourceMapNone SourceMapMode = "none"
)

// DefaultTarget is the language level applied when neither an explicit
// target nor an env-target block is configured.
const DefaultTarget = "es2022"

// EnvOptions configures environment-based target selection. When present,
// it takes precedence over the fixed default target level.
type EnvOptions struct {
	Targets string
}

// PluginDescriptor references a compiler extension by name together with
// its plugin-specific options.
type PluginDescriptor struct {
	Name    string
	Options map[string]any
}

// Experimental groups options that are forwarded to the compiler without
// interpretation, currently only the plugin list.
type Experimental struct {
	Plugins []PluginDescriptor
}

// CompileOptions is the canonical merged configuration controlling the
// external compiler for one configured transformer instance.
//
// The struct is mutated during setup (defaulting) and its plugin list may
// grow across transform calls on the same instance. It is never shared
// across instances.
type CompileOptions struct {
	// Target is the language level, e.g. "es2022".
	Target string
	// Env selects targets from an environment description instead of a
	// fixed language level.
	Env *EnvOptions
	// Module is the module kind for the current call. It is set on a
	// per-call overlay, never persisted into the shared options.
	Module ModuleKind
	// SourceMaps selects the source map mode.
	SourceMaps SourceMapMode
	// BasePath is the base directory for module resolution. It is made
	// absolute during setup.
	BasePath string
	// Experimental carries the plugin list.
	Experimental *Experimental
	// Coverage is the instrumentation block as read from setup input or
	// config file. Setup strips it out of the resolved options.
	Coverage *InstrumentConfig
	// TestHarness marks the output as test-framework-generated. Setup
	// always forces it to true.
	TestHarness bool
}

// Clone returns a per-call copy of the options. The Experimental block is
// shared with the receiver so that plugin-list accumulation on the
// configured instance stays visible to in-flight overlays.
func (o *CompileOptions) Clone() *CompileOptions {
	c := *o
	return &c
}

// HasPlugin reports whether the plugin list contains a descriptor with
// the given name.
func (o *CompileOptions) HasPlugin(name string) bool {
	if o.Experimental == nil {
		return false
	}
	for _, p := range o.Experimental.Plugins {
		if p.Name == name {
			return true
		}
	}
	return false
}

// AppendPlugin adds a descriptor to the plugin list, creating the
// experimental block if needed. Names are unique: appending a descriptor
// whose name is already present is a no-op.
func (o *CompileOptions) AppendPlugin(d PluginDescriptor) {
	if o.HasPlugin(d.Name) {
		return
	}
	if o.Experimental == nil {
		o.Experimental = &Experimental{}
	}
	if d.Options == nil {
		d.Options = map[string]any{}
	}
	o.Experimental.Plugins = append(o.Experimental.Plugins, d)
}

// CallContext carries the per-invocation flags supplied by the host test
// framework.
type CallContext struct {
	// WantsCoverage is true when the current run collects coverage.
	WantsCoverage bool
	// SupportsStaticESM is true when the consuming module system can load
	// static ES modules natively.
	SupportsStaticESM bool
}
