// Package trafilatura extracts article bodies from full web pages so that
// only the main content is converted to rich text.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/richtext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements richtext.Extractor at compile time.
var _ richtext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// ContentHTML holds the children of the extracted content node, so its
// blocks are top-level elements when parsed again.
func (e *Extractor) Extract(rawHTML string) (*richtext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, richtext.Errorf(richtext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderChildren(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &richtext.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderChildren renders the child nodes of n to a string.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
