// Package execcompiler adapts an out-of-process compiler command to
// ports.Compiler. The command receives a JSON request on stdin and must
// answer with a JSON {"code", "map"} object on stdout; stderr is relayed
// to the logger.
package execcompiler

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by invoking an external command per
// transform call.
type Compiler struct {
	command []string
	version string
	logger  ports.Logger
}

// New creates a Compiler for the given command line. The version string
// identifies the external binary for cache fingerprinting.
func New(command []string, version string, logger ports.Logger) *Compiler {
	return &Compiler{
		command: command,
		version: version,
		logger:  logger,
	}
}

// request is the wire shape written to the command's stdin.
type request struct {
	Source   string      `json:"source"`
	Filename string      `json:"filename"`
	Options  wireOptions `json:"options"`
}

type wireOptions struct {
	Target     string       `json:"target,omitzero"`
	EnvTargets string       `json:"envTargets,omitzero"`
	Module     string       `json:"module,omitzero"`
	SourceMaps string       `json:"sourceMaps,omitzero"`
	BasePath   string       `json:"basePath,omitzero"`
	Plugins    []wirePlugin `json:"plugins,omitzero"`
	Harness    bool         `json:"testHarness"`
}

type wirePlugin struct {
	Name    string         `json:"name"`
	Options map[string]any `json:"options,omitzero"`
}

// TransformSync invokes the external command and blocks until it exits.
func (c *Compiler) TransformSync(source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
	return c.run(context.Background(), source, filename, opts)
}

// Transform invokes the external command under the given context. The
// context terminates the subprocess on cancellation; any further
// semantics are the command's concern.
func (c *Compiler) Transform(ctx context.Context, source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
	return c.run(ctx, source, filename, opts)
}

// Version reports the configured version of the external binary.
func (c *Compiler) Version() string {
	return c.version
}

func (c *Compiler) run(ctx context.Context, source, filename string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
	if len(c.command) == 0 {
		return nil, domain.ErrNoCompiler
	}

	payload, err := json.Marshal(newRequest(source, filename, opts))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode compile request")
	}

	cmd := exec.CommandContext(ctx, c.command[0], c.command[1:]...) //nolint:gosec // user provided command
	cmd.Stdin = bytes.NewReader(payload)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: c.logger}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}
		return nil, zerr.With(zerr.Wrap(err, "compiler command failed"), "exit_code", exitCode)
	}

	var res domain.TransformResult
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		return nil, zerr.Wrap(err, "failed to decode compile response")
	}
	return &res, nil
}

func newRequest(source, filename string, opts *domain.CompileOptions) request {
	wire := wireOptions{
		Target:     opts.Target,
		Module:     string(opts.Module),
		SourceMaps: string(opts.SourceMaps),
		BasePath:   opts.BasePath,
		Harness:    opts.TestHarness,
	}
	if opts.Env != nil {
		wire.EnvTargets = opts.Env.Targets
	}
	if opts.Experimental != nil {
		for _, p := range opts.Experimental.Plugins {
			wire.Plugins = append(wire.Plugins, wirePlugin{Name: p.Name, Options: p.Options})
		}
	}
	return request{Source: source, Filename: filename, Options: wire}
}

// logWriter relays subprocess stderr lines to the logger.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	if w.logger != nil {
		for line := range strings.Lines(string(p)) {
			if trimmed := strings.TrimRight(line, "\n"); trimmed != "" {
				w.logger.Warn(trimmed)
			}
		}
	}
	return len(p), nil
}
