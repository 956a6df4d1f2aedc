package mock

import "github.com/fwojciec/richtext"

var _ richtext.Hasher = (*Hasher)(nil)

// Hasher is a mock implementation of richtext.Hasher.
type Hasher struct {
	HashFn func(f richtext.LocalizedField) (uint64, error)
}

func (h *Hasher) Hash(f richtext.LocalizedField) (uint64, error) {
	return h.HashFn(f)
}
