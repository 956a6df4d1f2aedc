// Package xxhash fingerprints localized field values with xxHash.
package xxhash

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/richtext"
)

// Ensure Hasher implements richtext.Hasher at compile time.
var _ richtext.Hasher = (*Hasher)(nil)

// Hasher hashes the JSON encoding of a field. Map keys are sorted by the
// encoder, so equal values always produce equal hashes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the xxHash64 of the field's JSON encoding.
func (h *Hasher) Hash(f richtext.LocalizedField) (uint64, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}
