// Package config provides the compiler config loader for recast.
//
// The config file is JWCC ("JSON with commas and comments"), the permissive
// superset of JSON used by compiler config conventions. It is standardized
// to strict JSON before decoding.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/tailscale/hujson"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the conventional compiler config file name.
const DefaultFilename = ".recastrc"

var _ ports.OptionsLoader = (*FileLoader)(nil)

// FileLoader implements ports.OptionsLoader using a JWCC file.
type FileLoader struct {
	Filename string
}

// ParseError reports every problem found while parsing a compiler config
// file. Problems are collected, not raised one at a time.
type ParseError struct {
	Path string
	Err  *multierror.Error
}

// Error formats the path followed by each collected problem.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed compiler config %s: %s", e.Path, e.Err)
}

// Unwrap exposes the collected problems for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Err }

// Problems returns the individual parse problems.
func (e *ParseError) Problems() []error { return e.Err.Errors }

// Load reads the compiler config from the given directory. A missing file
// is not an error: empty options are returned so the resolver's defaults
// apply.
func (l *FileLoader) Load(dir string) (*domain.CompileOptions, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.CompileOptions{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read compiler config"), "path", path)
	}

	return Parse(data, path)
}

// Parse decodes JWCC config content into compile options. On failure it
// returns a *ParseError carrying all collected problems and no options.
func Parse(data []byte, path string) (*domain.CompileOptions, error) {
	var problems *multierror.Error

	var dto optionsDTO
	std, err := hujson.Standardize(data)
	if err != nil {
		problems = multierror.Append(problems, err)
	} else if err := json.Unmarshal(std, &dto); err != nil {
		problems = multierror.Append(problems, err)
	}

	if problems.ErrorOrNil() != nil {
		return nil, &ParseError{Path: path, Err: problems}
	}

	return toDomain(&dto), nil
}

func toDomain(dto *optionsDTO) *domain.CompileOptions {
	opts := &domain.CompileOptions{
		Target:     dto.Target,
		Module:     domain.ModuleKind(dto.Module),
		SourceMaps: domain.SourceMapMode(dto.SourceMaps),
		BasePath:   dto.BasePath,
	}

	if dto.Env != nil {
		opts.Env = &domain.EnvOptions{Targets: dto.Env.Targets}
	}

	if dto.Experimental != nil && len(dto.Experimental.Plugins) > 0 {
		exp := &domain.Experimental{}
		for _, p := range dto.Experimental.Plugins {
			exp.Plugins = append(exp.Plugins, domain.PluginDescriptor{
				Name:    p.Name,
				Options: p.Options,
			})
		}
		opts.Experimental = exp
	}

	if dto.Coverage != nil {
		cov := &domain.InstrumentConfig{
			Enabled:            dto.Coverage.Enabled,
			VarName:            dto.Coverage.VarName,
			Compact:            dto.Coverage.Compact,
			ReportLogic:        dto.Coverage.ReportLogic,
			IgnoreClassMethods: dto.Coverage.IgnoreClassMethods,
		}
		if dto.Coverage.Logging != nil {
			cov.Logging = domain.InstrumentLogging{
				Level:       dto.Coverage.Logging.Level,
				EnableTrace: dto.Coverage.Logging.EnableTrace,
			}
		}
		opts.Coverage = cov
	}

	return opts
}
