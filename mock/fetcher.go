package mock

import (
	"context"

	"github.com/fwojciec/richtext"
)

var _ richtext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of richtext.Fetcher.
type Fetcher struct {
	FetchContentFn func(ctx context.Context, url string) (richtext.Content, error)
}

func (f *Fetcher) FetchContent(ctx context.Context, url string) (richtext.Content, error) {
	return f.FetchContentFn(ctx, url)
}
