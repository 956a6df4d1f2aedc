package richtext

// Converter converts HTML to a rich-text document.
type Converter interface {
	// Convert transforms an HTML fragment into a rich-text document.
	// Conversion never fails: malformed markup is tolerated and unknown
	// tags fall back to paragraphs. The returned document always holds
	// at least one block.
	Convert(html string) *Document
}

// Renderer renders HTML as Markdown for previewing field content.
type Renderer interface {
	Render(html string) (string, error)
}
