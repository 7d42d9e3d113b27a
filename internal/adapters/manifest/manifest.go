// Package manifest provides the batch manifest loader for recast.
package manifest

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional batch manifest file name.
const DefaultFilename = "recast.yaml"

// Manifest describes one batch precompile run: which sources to warm the
// transform cache with and under which per-run flags.
type Manifest struct {
	Version  string
	Sources  []string
	Coverage bool
	ESM      bool
}

// manifestDTO represents the structure of the recast.yaml file.
type manifestDTO struct {
	Version  string   `yaml:"version"`
	Sources  []string `yaml:"sources"`
	Coverage bool     `yaml:"coverage"`
	ESM      bool     `yaml:"esm"`
}

// Load reads a manifest file from the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	if len(dto.Sources) == 0 {
		return nil, zerr.New("manifest lists no sources")
	}

	return &Manifest{
		Version:  dto.Version,
		Sources:  canonicalizeStrings(dto.Sources),
		Coverage: dto.Coverage,
		ESM:      dto.ESM,
	}, nil
}

// ResolveSources expands the manifest's glob patterns against the given
// root and returns the canonical file list.
func (m *Manifest) ResolveSources(root string) ([]string, error) {
	var files []string
	for _, pattern := range m.Sources {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "bad source pattern"), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("source not found"), "pattern", pattern)
		}
		files = append(files, matches...)
	}
	return canonicalizeStrings(files), nil
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)

	return slices.Compact(sorted)
}
