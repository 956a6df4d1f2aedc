package mock

import (
	"context"

	"github.com/fwojciec/richtext"
)

var _ richtext.EntryWriter = (*EntryWriter)(nil)

// EntryWriter is a mock implementation of richtext.EntryWriter.
type EntryWriter struct {
	WriteEntryFn func(ctx context.Context, name string, entry richtext.FormattedEntry) error
}

func (w *EntryWriter) WriteEntry(ctx context.Context, name string, entry richtext.FormattedEntry) error {
	return w.WriteEntryFn(ctx, name, entry)
}
