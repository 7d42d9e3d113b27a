package transformer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"go.trai.ch/recast/internal/core/domain"
	"go.trai.ch/zerr"
)

// CacheKey derives the cache key for one transform call. The base
// fingerprint already covers source content, file path, and compiler
// version; the module-format flag is folded in on top because it changes
// the emitted code even for identical source text.
//
// Pure: identical inputs always yield the identical key. No I/O.
func (t *Transformer) CacheKey(source, filename string, cc domain.CallContext) (string, error) {
	base, err := t.fingerprinter.BaseKey(source, filename)
	if err != nil {
		return "", zerr.Wrap(err, "failed to compute base fingerprint")
	}

	payload, err := json.Marshal(struct {
		SupportsStaticESM bool `json:"supportsStaticESM"`
	}{cc.SupportsStaticESM})
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize call flags")
	}

	h := sha256.New()
	_, _ = h.Write([]byte(base))
	_, _ = h.Write([]byte{0}) // Separator
	_, _ = h.Write(payload)

	return hex.EncodeToString(h.Sum(nil)), nil
}
