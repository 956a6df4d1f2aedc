// Package htmltomarkdown renders HTML field content as Markdown for previews.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/richtext"
)

// Ensure Renderer implements richtext.Renderer at compile time.
var _ richtext.Renderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to render HTML as Markdown.
//
// Unlike the rich-text converter, the preview keeps inline formatting, so
// comparing the two shows what a conversion drops.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render transforms HTML content into Markdown.
func (r *Renderer) Render(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", richtext.Errorf(richtext.EINVALID, "empty HTML input")
	}

	result, err := r.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
