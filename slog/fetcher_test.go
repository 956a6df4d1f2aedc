package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/mock"
	richslog "github.com/fwojciec/richtext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchContent(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with field count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchContentFn: func(ctx context.Context, url string) (richtext.Content, error) {
				return richtext.Content{{Name: "title", Value: "Hi"}, {Name: "id", Value: 1}}, nil
			},
		}

		fetcher := richslog.NewLoggingFetcher(inner, logger)
		content, err := fetcher.FetchContent(context.Background(), "https://example.com/posts/1")

		require.NoError(t, err)
		assert.Len(t, content, 2)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/posts/1")
		assert.Contains(t, output, "fields=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchContentFn: func(ctx context.Context, url string) (richtext.Content, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := richslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.FetchContent(context.Background(), "https://example.com/posts/1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
