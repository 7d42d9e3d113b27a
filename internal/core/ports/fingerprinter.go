package ports

// Fingerprinter computes the base cache fingerprint for a source file.
// The base key must cover source content, file path, and the compiler
// version; the per-call module-format flag is folded in separately by the
// cache key deriver.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	BaseKey(source, filename string) (string, error)
}
