package transformer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports/mocks"
	"go.trai.ch/recast/internal/engine/transformer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestResolve_DefaultTarget(t *testing.T) {
	tests := []struct {
		name     string
		explicit *domain.CompileOptions
		want     string
	}{
		{
			name:     "empty options get the baseline",
			explicit: &domain.CompileOptions{},
			want:     domain.DefaultTarget,
		},
		{
			name:     "explicit target wins",
			explicit: &domain.CompileOptions{Target: "es2015"},
			want:     "es2015",
		},
		{
			name:     "env targets suppress the baseline",
			explicit: &domain.CompileOptions{Env: &domain.EnvOptions{Targets: "defaults"}},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, err := transformer.Resolve(tt.explicit, nil, ".")
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Target)
		})
	}
}

func TestResolve_ForcesTestHarnessMarker(t *testing.T) {
	opts, _, err := transformer.Resolve(&domain.CompileOptions{TestHarness: false}, nil, ".")
	require.NoError(t, err)
	assert.True(t, opts.TestHarness)

	// No explicit options and no loader still yields the marker.
	opts, _, err = transformer.Resolve(nil, nil, ".")
	require.NoError(t, err)
	assert.True(t, opts.TestHarness)
}

func TestResolve_SourceMapDefault(t *testing.T) {
	opts, _, err := transformer.Resolve(&domain.CompileOptions{}, nil, ".")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMapInline, opts.SourceMaps)

	opts, _, err = transformer.Resolve(&domain.CompileOptions{SourceMaps: domain.SourceMapNone}, nil, ".")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMapNone, opts.SourceMaps)
}

func TestResolve_BasePathMadeAbsolute(t *testing.T) {
	opts, _, err := transformer.Resolve(&domain.CompileOptions{BasePath: "src"}, nil, "/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", "src"), opts.BasePath)

	abs := filepath.Join(t.TempDir(), "src")
	opts, _, err = transformer.Resolve(&domain.CompileOptions{BasePath: abs}, nil, "/project")
	require.NoError(t, err)
	assert.Equal(t, abs, opts.BasePath)
}

func TestResolve_StripsCoverageBlock(t *testing.T) {
	explicit := &domain.CompileOptions{
		Coverage: &domain.InstrumentConfig{Enabled: true, VarName: "__cov__"},
	}

	opts, instrument, err := transformer.Resolve(explicit, nil, ".")
	require.NoError(t, err)

	assert.Nil(t, opts.Coverage)
	require.NotNil(t, instrument)
	assert.Equal(t, "__cov__", instrument.VarName)
}

func TestResolve_ExplicitSkipsLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A loader expecting zero calls: explicit options bypass discovery.
	loader := mocks.NewMockOptionsLoader(ctrl)

	opts, _, err := transformer.Resolve(&domain.CompileOptions{Target: "es2015"}, loader, ".")
	require.NoError(t, err)
	assert.Equal(t, "es2015", opts.Target)
}

func TestResolve_LoaderFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockOptionsLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, zerr.New("boom"))

	_, _, err := transformer.Resolve(nil, loader, ".")
	require.Error(t, err)
}

func TestResolve_DoesNotMutateCallerOptions(t *testing.T) {
	explicit := &domain.CompileOptions{}

	_, _, err := transformer.Resolve(explicit, nil, ".")
	require.NoError(t, err)

	assert.False(t, explicit.TestHarness)
	assert.Empty(t, explicit.Target)
}
