package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedTarget is returned when the configured language level is
	// unknown to the compiler adapter.
	ErrUnsupportedTarget = zerr.New("unsupported target level")

	// ErrNoCompiler is returned when a transformer is constructed without a
	// compiler.
	ErrNoCompiler = zerr.New("no compiler configured")
)
