package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   string
		want    string
		wantErr bool
	}{
		{
			name:  "url path",
			entry: "https://example.com/wp-json/wp/v2/posts/7",
			want:  "wp-json/wp/v2/posts/7.json",
		},
		{
			name:  "trailing slash becomes index",
			entry: "https://example.com/posts/",
			want:  "posts/index.json",
		},
		{
			name:  "root becomes index",
			entry: "https://example.com",
			want:  "index.json",
		},
		{
			name:  "ignores query string",
			entry: "https://example.com/posts/7?_embed=1",
			want:  "posts/7.json",
		},
		{
			name:  "plain name",
			entry: "hello-world",
			want:  "hello-world.json",
		},
		{
			name:  "nested plain name",
			entry: "posts/hello",
			want:  "posts/hello.json",
		},
		{
			name:  "does not repeat json extension",
			entry: "post.json",
			want:  "post.json",
		},
		{
			name:  "does not repeat json extension of url path",
			entry: "https://example.com/posts/7.json",
			want:  "posts/7.json",
		},
		{
			name:    "rejects parent traversal",
			entry:   "../outside",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.EntryPath(tt.entry)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, richtext.EINVALID, richtext.ErrorCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ richtext.EntryWriter = &fs.Writer{}
}

func TestWriter_WriteEntry(t *testing.T) {
	t.Parallel()

	entry := richtext.FormattedEntry{
		{Name: "title", Field: richtext.LocalizedField{Locale: "en-US", Value: "Hello"}},
		{Name: "body", Field: richtext.LocalizedField{Locale: "en-US", Value: richtext.NewDocument()}},
	}

	t.Run("writes entry as JSON file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteEntry(context.Background(), "https://example.com/posts/7", entry)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "posts", "7.json"))
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(content, &decoded))
		assert.Equal(t, "Hello", decoded["title"]["en-US"])
		assert.Contains(t, decoded["body"]["en-US"], "nodeType")

		_, err = os.Stat(filepath.Join(dir, "posts", "7.json.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("overwrites existing entry", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteEntry(context.Background(), "post", entry))
		require.NoError(t, w.WriteEntry(context.Background(), "post", entry[:1]))

		content, err := os.ReadFile(filepath.Join(dir, "post.json"))
		require.NoError(t, err)
		assert.NotContains(t, string(content), "body")
	})

	t.Run("returns error for canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewWriter(t.TempDir()).WriteEntry(ctx, "post", entry)

		require.Error(t, err)
	})
}
