// Package esbuild adapts the esbuild transform engine to ports.Compiler.
package esbuild

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/hashicorp/go-multierror"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/zerr"
)

const modulePath = "github.com/evanw/esbuild"

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler using the esbuild transform API.
// Plugin descriptors on the compile options are engine metadata and are
// not executed here: the transform API has no plugin pipeline.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// TransformSync compiles the source with esbuild.
func (c *Compiler) TransformSync(source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
	to, err := toTransformOptions(filename, opts)
	if err != nil {
		return nil, err
	}

	res := api.Transform(source, to)
	if len(res.Errors) > 0 {
		return nil, compileError(filename, res.Errors)
	}

	return &domain.TransformResult{
		Code: string(res.Code),
		Map:  string(res.Map),
	}, nil
}

// Transform is the asynchronous variant. The engine itself is in-process
// and blocking; the context is only consulted before delegation.
func (c *Compiler) Transform(ctx context.Context, source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.TransformSync(source, filename, opts)
}

// Version reports the esbuild module version from build info.
func (c *Compiler) Version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	return "unknown"
}

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

func toTransformOptions(filename string, opts *domain.CompileOptions) (api.TransformOptions, error) {
	to := api.TransformOptions{
		Sourcefile: filename,
		Loader:     loaderFor(filename),
	}

	// An env-target block defers target selection to the engine default;
	// a fixed language level maps directly.
	if opts.Target != "" {
		target, ok := targets[strings.ToLower(opts.Target)]
		if !ok {
			return api.TransformOptions{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "unknown language level"), "target", opts.Target)
		}
		to.Target = target
	}

	switch opts.Module {
	case domain.ModuleES6:
		to.Format = api.FormatESModule
	case domain.ModuleCommonJS:
		to.Format = api.FormatCommonJS
	}

	switch opts.SourceMaps {
	case domain.SourceMapInline:
		to.Sourcemap = api.SourceMapInline
	case domain.SourceMapExternal:
		to.Sourcemap = api.SourceMapExternal
	case domain.SourceMapNone:
		to.Sourcemap = api.SourceMapNone
	}

	return to, nil
}

func loaderFor(filename string) api.Loader {
	switch filepath.Ext(filename) {
	case ".ts", ".mts", ".cts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".json":
		return api.LoaderJSON
	default:
		return api.LoaderJS
	}
}

// compileError folds every engine message into one error. The messages
// are the engine's own reporting and pass through uninterpreted.
func compileError(filename string, msgs []api.Message) error {
	var merr *multierror.Error
	for _, m := range msgs {
		if m.Location != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		merr = multierror.Append(merr, errors.New(m.Text))
	}
	return zerr.With(zerr.Wrap(merr.ErrorOrNil(), "transform failed"), "filename", filename)
}
