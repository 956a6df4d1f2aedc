package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements richtext.Renderer at compile time.
var _ richtext.Renderer = (*htmltomarkdown.Renderer)(nil)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders basic paragraph", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewRenderer().Render(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("renders headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewRenderer().Render(`<h1>Title</h1><h2>Subtitle</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
	})

	t.Run("renders links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewRenderer().Render(`<p>Visit <a href="https://example.com">Example</a> for more info.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("keeps inline formatting", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewRenderer().Render(`<p><strong>Bold</strong> and <em>italic</em> text.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("renders lists and blockquotes", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewRenderer().Render(`<ol><li>First</li><li>Second</li></ol><blockquote><p>Quote.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "1. First")
		assert.Contains(t, md, "2. Second")
		assert.Contains(t, md, "> Quote.")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewRenderer().Render("  ")

		require.Error(t, err)
		assert.Equal(t, richtext.EINVALID, richtext.ErrorCode(err))
	})
}
