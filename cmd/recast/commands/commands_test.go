package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/recast/cmd/recast/commands"
	"go.trai.ch/recast/internal/adapters/fingerprint"
	"go.trai.ch/recast/internal/app"
	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/recast/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestCLI(t *testing.T, ctrl *gomock.Controller) (*commands.CLI, *mocks.MockCompiler, *bytes.Buffer) {
	t.Helper()

	mockLoader := mocks.NewMockOptionsLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(&domain.CompileOptions{}, nil).AnyTimes()

	mockCompiler := mocks.NewMockCompiler(ctrl)
	mockStore := mocks.NewMockCacheStore(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(mockLoader, mockCompiler, fingerprint.NewHasher("v1"), mockStore, mockLogger)

	cli := commands.New(&app.Components{App: a, Logger: mockLogger})

	out := &bytes.Buffer{}
	cli.SetOut(out)

	return cli, mockCompiler, out
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.ts")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestTransform_PrintsCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, mockCompiler, out := newTestCLI(t, ctrl)
	path := writeSource(t, "const a = 1")

	mockCompiler.EXPECT().
		TransformSync("const a = 1", path, gomock.Any()).
		Return(&domain.TransformResult{Code: "var a = 1;"}, nil).
		Times(1)

	cli.SetArgs([]string{"transform", path})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if out.String() != "var a = 1;" {
		t.Errorf("Expected transformed code, got: %q", out.String())
	}
}

func TestTransform_AsyncUsesDelegation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, mockCompiler, _ := newTestCLI(t, ctrl)
	path := writeSource(t, "const a = 1")

	mockCompiler.EXPECT().
		Transform(gomock.Any(), "const a = 1", path, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, opts *domain.CompileOptions) (*domain.TransformResult, error) {
			if opts.Module != domain.ModuleES6 {
				t.Errorf("Expected ES module output for async path, got: %s", opts.Module)
			}
			return &domain.TransformResult{Code: "export {};"}, nil
		}).
		Times(1)

	cli.SetArgs([]string{"transform", path, "--async"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestKey_PrintsHexDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, out := newTestCLI(t, ctrl)
	path := writeSource(t, "const a = 1")

	cli.SetArgs([]string{"key", path, "--esm"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	key := strings.TrimSpace(out.String())
	if len(key) != 64 {
		t.Errorf("Expected 64 character digest, got %d: %q", len(key), key)
	}
}

func TestTransform_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _ := newTestCLI(t, ctrl)

	cli.SetArgs([]string{"transform", "/does/not/exist.ts"})

	if err := cli.Execute(context.Background()); err == nil {
		t.Error("Expected an error for a missing source file")
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, out := newTestCLI(t, ctrl)

	cli.SetArgs([]string{"version"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Error("Expected a version string")
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _ := newTestCLI(t, ctrl)

	cli.SetArgs([]string{"--help"})

	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}
