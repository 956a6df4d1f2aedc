// Package readability extracts article bodies with go-readability. It is an
// alternative to the trafilatura extractor for pages trafilatura trims too hard.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/richtext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements richtext.Extractor at compile time.
var _ richtext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// The page wrapper readability adds is removed so the article's blocks are
// top-level elements.
func (e *Extractor) Extract(rawHTML string) (*richtext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, richtext.Errorf(richtext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &richtext.ExtractResult{
		Title:       article.Title,
		ContentHTML: unwrapPage(article.Content),
	}, nil
}

// unwrapPage returns the inner HTML of readability's page container, or
// content unchanged when there is none.
func unwrapPage(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	page := doc.Find("div.page").First()
	if page.Length() == 0 {
		return content
	}

	inner, err := page.Html()
	if err != nil {
		return content
	}
	return inner
}
