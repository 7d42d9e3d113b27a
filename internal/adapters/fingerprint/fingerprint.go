// Package fingerprint provides the default base-key function for cache
// key derivation.
package fingerprint

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recast/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes base fingerprints covering source content, file path,
// and the compiler version it was created with.
type Hasher struct {
	version string
}

// NewHasher creates a Hasher bound to the given compiler version. A new
// compiler build yields new fingerprints for otherwise identical inputs.
func NewHasher(compilerVersion string) *Hasher {
	return &Hasher{version: compilerVersion}
}

// BaseKey computes the XXHash over source, filename, and version.
func (h *Hasher) BaseKey(source, filename string) (string, error) {
	d := xxhash.New()

	_, _ = d.WriteString(source)
	_, _ = d.Write([]byte{0}) // Separator
	_, _ = d.WriteString(filename)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(h.version)

	return fmt.Sprintf("%016x", d.Sum64()), nil
}
