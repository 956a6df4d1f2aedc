// Package goquery converts HTML to rich-text documents using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/richtext"
	"golang.org/x/net/html"
)

// Ensure Converter implements richtext.Converter at compile time.
var _ richtext.Converter = (*Converter)(nil)

// blockFunc builds a single block node from a top-level element.
type blockFunc func(sel *goquery.Selection) *richtext.Node

// blockFuncs maps lower-case tag names to block builders.
// Tags missing from the table become paragraphs.
var blockFuncs = map[string]blockFunc{
	"p":          paragraph,
	"h1":         heading(1),
	"h2":         heading(2),
	"h3":         heading(3),
	"h4":         heading(4),
	"h5":         heading(5),
	"h6":         heading(6),
	"ul":         list(richtext.UnorderedList),
	"ol":         list(richtext.OrderedList),
	"li":         listItem,
	"blockquote": blockquote,
	"hr":         rule,
	"a":          link,
	"img":        image,
}

// whitespaceReplacer strips the newlines and tabs that pretty-printed HTML
// carries between and inside tags.
var whitespaceReplacer = strings.NewReplacer("\n", "", "\r", "", "\t", "")

// Converter converts HTML fragments into rich-text documents.
// It holds no state and is safe for concurrent use.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms an HTML fragment into a rich-text document.
//
// Each direct child element of the body becomes exactly one block.
// Only the direct text of an element is kept: text inside nested inline
// elements such as <b> or <em> is dropped. When the input holds no
// elements the document gets a single empty paragraph.
func (c *Converter) Convert(rawHTML string) *richtext.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(whitespaceReplacer.Replace(rawHTML)))
	if err != nil {
		return richtext.NewDocument()
	}

	var blocks []*richtext.Node
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, convertBlock(sel))
	})

	return richtext.NewDocument(blocks...)
}

func convertBlock(sel *goquery.Selection) *richtext.Node {
	if fn, ok := blockFuncs[strings.ToLower(goquery.NodeName(sel))]; ok {
		return fn(sel)
	}
	return paragraph(sel)
}

func paragraph(sel *goquery.Selection) *richtext.Node {
	return richtext.Paragraph(textContent(sel)...)
}

func heading(level int) blockFunc {
	return func(sel *goquery.Selection) *richtext.Node {
		return richtext.Heading(level, textContent(sel)...)
	}
}

func list(build func(items ...*richtext.Node) *richtext.Node) blockFunc {
	return func(sel *goquery.Selection) *richtext.Node {
		var items []*richtext.Node
		sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, listItem(li))
		})
		return build(items...)
	}
}

func listItem(sel *goquery.Selection) *richtext.Node {
	return richtext.ListItem(paragraph(sel))
}

func blockquote(sel *goquery.Selection) *richtext.Node {
	return richtext.Blockquote(paragraph(sel))
}

func rule(_ *goquery.Selection) *richtext.Node {
	return richtext.HR()
}

func link(sel *goquery.Selection) *richtext.Node {
	href, _ := sel.Attr("href")
	return richtext.Paragraph(richtext.Hyperlink(href, textContent(sel)...))
}

func image(sel *goquery.Selection) *richtext.Node {
	src, _ := sel.Attr("src")
	return richtext.EmbeddedAsset(src)
}

// textContent returns a text node for each non-blank direct text child of
// the selected element. Child elements are not descended into.
func textContent(sel *goquery.Selection) []*richtext.Node {
	var nodes []*richtext.Node
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.TextNode {
				continue
			}
			if value := strings.TrimSpace(c.Data); value != "" {
				nodes = append(nodes, richtext.Text(value))
			}
		}
	}
	return nodes
}
