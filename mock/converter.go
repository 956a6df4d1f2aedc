package mock

import "github.com/fwojciec/richtext"

var _ richtext.Converter = (*Converter)(nil)

// Converter is a mock implementation of richtext.Converter.
type Converter struct {
	ConvertFn func(html string) *richtext.Document
}

func (c *Converter) Convert(html string) *richtext.Document {
	return c.ConvertFn(html)
}

var _ richtext.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of richtext.Renderer.
type Renderer struct {
	RenderFn func(html string) (string, error)
}

func (r *Renderer) Render(html string) (string, error) {
	return r.RenderFn(html)
}
