// Package fs provides file-based storage for formatted entries.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/richtext"
)

// EntryPath converts an entry name to a relative file path.
// URLs map to their path: https://example.com/wp-json/wp/v2/posts/7 →
// wp-json/wp/v2/posts/7.json. Other names are used as is. A trailing .json
// extension is not repeated.
func EntryPath(name string) (string, error) {
	p := name
	if u, err := url.Parse(name); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	p = strings.TrimSuffix(p, ".json")

	// Handle root or trailing slash → index.json
	p = strings.TrimPrefix(p, "/")
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}

	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", richtext.Errorf(richtext.EINVALID, "entry name %q escapes output directory", name)
	}

	return filepath.FromSlash(cleaned) + ".json", nil
}

// Ensure Writer implements richtext.EntryWriter at compile time.
var _ richtext.EntryWriter = (*Writer)(nil)

// Writer writes formatted entries as indented JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteEntry writes an entry to disk. The file is written to a temporary
// name first and renamed into place, so readers never see partial files.
func (w *Writer) WriteEntry(ctx context.Context, name string, entry richtext.FormattedEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := EntryPath(name)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, append(content, '\n'), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
