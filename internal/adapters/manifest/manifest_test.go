package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recast/internal/adapters/manifest"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), manifest.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
version: "1"
sources:
  - "src/*.ts"
  - "lib/*.ts"
coverage: true
esm: true
`
	m, err := manifest.Load(writeManifest(t, content))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, []string{"lib/*.ts", "src/*.ts"}, m.Sources)
	assert.True(t, m.Coverage)
	assert.True(t, m.ESM)
}

func TestLoad_DeduplicatesSources(t *testing.T) {
	content := `
sources: ["src/*.ts", "src/*.ts", "a.ts"]
`
	m, err := manifest.Load(writeManifest(t, content))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ts", "src/*.ts"}, m.Sources)
}

func TestLoad_NoSources(t *testing.T) {
	_, err := manifest.Load(writeManifest(t, `version: "1"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestResolveSources(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	for _, name := range []string{"src/a.ts", "src/b.ts"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("const x = 1"), 0o600))
	}

	m := &manifest.Manifest{Sources: []string{"src/*.ts"}}
	files, err := m.ResolveSources(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "a.ts"),
		filepath.Join(root, "src", "b.ts"),
	}, files)
}

func TestResolveSources_MissingPattern(t *testing.T) {
	m := &manifest.Manifest{Sources: []string{"nope/*.ts"}}
	_, err := m.ResolveSources(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source not found")
}
