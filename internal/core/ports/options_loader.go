package ports

import "go.trai.ch/recast/internal/core/domain"

// OptionsLoader discovers compile options from a project configuration
// file when the caller supplies none explicitly.
//
//go:generate go run go.uber.org/mock/mockgen -source=options_loader.go -destination=mocks/mock_options_loader.go -package=mocks
type OptionsLoader interface {
	// Load reads the compiler config from the given directory. A missing
	// file is not an error: empty options are returned instead.
	Load(dir string) (*domain.CompileOptions, error)
}
