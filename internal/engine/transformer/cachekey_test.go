package transformer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recast/internal/adapters/fingerprint"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports/mocks"
	"go.trai.ch/recast/internal/engine/transformer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newKeyTransformer(t *testing.T) *transformer.Transformer {
	t.Helper()

	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	tr, err := transformer.New(transformer.Config{
		Options:       &domain.CompileOptions{},
		Compiler:      compiler,
		Fingerprinter: fingerprint.NewHasher("1.0.0"),
	})
	require.NoError(t, err)
	return tr
}

func TestCacheKey_Deterministic(t *testing.T) {
	tr := newKeyTransformer(t)
	cc := domain.CallContext{SupportsStaticESM: true}

	first, err := tr.CacheKey("const a = 1", "a.ts", cc)
	require.NoError(t, err)
	second, err := tr.CacheKey("const a = 1", "a.ts", cc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, "^[0-9a-f]{64}$", first)
}

func TestCacheKey_ModuleFormatChangesKey(t *testing.T) {
	tr := newKeyTransformer(t)

	esm, err := tr.CacheKey("const a = 1", "a.ts", domain.CallContext{SupportsStaticESM: true})
	require.NoError(t, err)
	cjs, err := tr.CacheKey("const a = 1", "a.ts", domain.CallContext{SupportsStaticESM: false})
	require.NoError(t, err)

	assert.NotEqual(t, esm, cjs)
}

func TestCacheKey_SourceAndFilenameChangeKey(t *testing.T) {
	tr := newKeyTransformer(t)
	cc := domain.CallContext{}

	base, err := tr.CacheKey("const a = 1", "a.ts", cc)
	require.NoError(t, err)

	otherSource, err := tr.CacheKey("const a = 2", "a.ts", cc)
	require.NoError(t, err)
	otherFile, err := tr.CacheKey("const a = 1", "b.ts", cc)
	require.NoError(t, err)

	assert.NotEqual(t, base, otherSource)
	assert.NotEqual(t, base, otherFile)
}

func TestCacheKey_FingerprinterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	fingerprinter := mocks.NewMockFingerprinter(ctrl)
	fingerprinter.EXPECT().BaseKey(gomock.Any(), gomock.Any()).Return("", zerr.New("boom"))

	tr, err := transformer.New(transformer.Config{
		Options:       &domain.CompileOptions{},
		Compiler:      compiler,
		Fingerprinter: fingerprinter,
	})
	require.NoError(t, err)

	_, err = tr.CacheKey("const a = 1", "a.ts", domain.CallContext{})
	require.Error(t, err)
}
