package mock

import "github.com/fwojciec/richtext"

var _ richtext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of richtext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*richtext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*richtext.ExtractResult, error) {
	return e.ExtractFn(html)
}
