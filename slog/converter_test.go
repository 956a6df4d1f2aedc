package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/mock"
	richslog "github.com/fwojciec/richtext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs input size and block count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		expected := richtext.NewDocument(richtext.HR(), richtext.HR())
		inner := &mock.Converter{
			ConvertFn: func(html string) *richtext.Document {
				return expected
			},
		}

		conv := richslog.NewLoggingConverter(inner, logger)
		doc := conv.Convert("<hr><hr>")

		require.Same(t, expected, doc)
		output := buf.String()
		assert.Contains(t, output, "convert")
		assert.Contains(t, output, "bytes=8")
		assert.Contains(t, output, "blocks=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html string) *richtext.Document {
				return richtext.NewDocument()
			},
		}

		conv := richslog.NewLoggingConverter(inner, logger)
		_ = conv.Convert("<p>x</p>")

		assert.Empty(t, buf.String())
	})
}
