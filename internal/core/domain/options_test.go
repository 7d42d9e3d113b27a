package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recast/internal/core/domain"
)

func TestAppendPlugin_UniqueByName(t *testing.T) {
	opts := &domain.CompileOptions{}

	opts.AppendPlugin(domain.PluginDescriptor{Name: "a"})
	opts.AppendPlugin(domain.PluginDescriptor{Name: "a", Options: map[string]any{"x": 1}})
	opts.AppendPlugin(domain.PluginDescriptor{Name: "b"})

	require.NotNil(t, opts.Experimental)
	require.Len(t, opts.Experimental.Plugins, 2)
	assert.Equal(t, "a", opts.Experimental.Plugins[0].Name)
	assert.Equal(t, "b", opts.Experimental.Plugins[1].Name)
}

func TestAppendPlugin_CreatesNestedPath(t *testing.T) {
	opts := &domain.CompileOptions{}
	assert.Nil(t, opts.Experimental)

	opts.AppendPlugin(domain.PluginDescriptor{Name: "cov"})

	require.NotNil(t, opts.Experimental)
	require.Len(t, opts.Experimental.Plugins, 1)
	// A nil options mapping is replaced with an empty one.
	assert.NotNil(t, opts.Experimental.Plugins[0].Options)
}

func TestHasPlugin(t *testing.T) {
	opts := &domain.CompileOptions{}
	assert.False(t, opts.HasPlugin("cov"))

	opts.AppendPlugin(domain.PluginDescriptor{Name: "cov"})
	assert.True(t, opts.HasPlugin("cov"))
	assert.False(t, opts.HasPlugin("other"))
}

func TestClone_SharesPluginList(t *testing.T) {
	opts := &domain.CompileOptions{Target: "es2020"}
	opts.AppendPlugin(domain.PluginDescriptor{Name: "cov"})

	overlay := opts.Clone()
	overlay.Module = domain.ModuleCommonJS

	// The overlay carries the shared plugin block but its module kind does
	// not leak back into the original.
	assert.True(t, overlay.HasPlugin("cov"))
	assert.Equal(t, domain.ModuleKind(""), opts.Module)
	assert.Same(t, opts.Experimental, overlay.Experimental)
}

func TestInstrumentConfig_PluginOptions(t *testing.T) {
	cfg := &domain.InstrumentConfig{
		Enabled:            true,
		VarName:            "__coverage__",
		Compact:            true,
		ReportLogic:        true,
		IgnoreClassMethods: []string{"render"},
		Logging:            domain.InstrumentLogging{Level: "warn", EnableTrace: true},
	}

	opts := cfg.PluginOptions()

	assert.Equal(t, "__coverage__", opts["coverageVariable"])
	assert.Equal(t, true, opts["compact"])
	assert.Equal(t, true, opts["reportLogic"])
	assert.Equal(t, []string{"render"}, opts["ignoreClassMethods"])
	assert.Equal(t, map[string]any{"level": "warn", "enableTrace": true}, opts["instrumentLog"])
}

func TestInstrumentConfig_PluginOptions_Empty(t *testing.T) {
	var cfg *domain.InstrumentConfig
	assert.Empty(t, cfg.PluginOptions())

	assert.Empty(t, (&domain.InstrumentConfig{Enabled: true}).PluginOptions())
}
