package richtext

import (
	"encoding/json"
	"strconv"
)

// NodeType discriminates the variants of a rich-text node.
type NodeType string

// Node types understood by the CMS rich-text field.
const (
	NodeDocument      NodeType = "document"
	NodeParagraph     NodeType = "paragraph"
	NodeHeading1      NodeType = "heading-1"
	NodeHeading2      NodeType = "heading-2"
	NodeHeading3      NodeType = "heading-3"
	NodeHeading4      NodeType = "heading-4"
	NodeHeading5      NodeType = "heading-5"
	NodeHeading6      NodeType = "heading-6"
	NodeUnorderedList NodeType = "unordered-list"
	NodeOrderedList   NodeType = "ordered-list"
	NodeListItem      NodeType = "list-item"
	NodeBlockquote    NodeType = "blockquote"
	NodeHR            NodeType = "hr"
	NodeEmbeddedAsset NodeType = "embedded-asset-block"
	NodeText          NodeType = "text"
	NodeHyperlink     NodeType = "hyperlink"
)

// HeadingType returns the node type for a heading of the given level.
// Returns false for levels outside 1..6.
func HeadingType(level int) (NodeType, bool) {
	if level < 1 || level > 6 {
		return "", false
	}
	return NodeType("heading-" + strconv.Itoa(level)), true
}

// IsInline reports whether the node type is an inline node.
func (t NodeType) IsInline() bool {
	return t == NodeText || t == NodeHyperlink
}

// Mark is a style mark applied to a text node (e.g. "bold").
type Mark struct {
	Type string `json:"type"`
}

// Document is the root of a rich-text tree.
// Content always holds at least one block.
type Document struct {
	NodeType NodeType       `json:"nodeType"`
	Data     map[string]any `json:"data"`
	Content  []*Node        `json:"content"`
}

// NewDocument returns a document holding blocks. When no blocks are given,
// a single empty paragraph is added so the document is never empty.
func NewDocument(blocks ...*Node) *Document {
	if len(blocks) == 0 {
		blocks = []*Node{Paragraph()}
	}
	return &Document{
		NodeType: NodeDocument,
		Data:     map[string]any{},
		Content:  blocks,
	}
}

// MarshalJSON encodes the document in the CMS wire format.
func (d *Document) MarshalJSON() ([]byte, error) {
	type document Document
	out := document(*d)
	if out.NodeType == "" {
		out.NodeType = NodeDocument
	}
	if out.Data == nil {
		out.Data = map[string]any{}
	}
	if out.Content == nil {
		out.Content = []*Node{}
	}
	return json.Marshal(out)
}

// Node is a block or inline node of a rich-text tree.
// Text nodes use Value and Marks; every other node uses Content.
type Node struct {
	NodeType NodeType
	Data     map[string]any
	Content  []*Node
	Value    string
	Marks    []Mark
}

type textNode struct {
	NodeType NodeType       `json:"nodeType"`
	Value    string         `json:"value"`
	Marks    []Mark         `json:"marks"`
	Data     map[string]any `json:"data"`
}

type elementNode struct {
	NodeType NodeType       `json:"nodeType"`
	Data     map[string]any `json:"data"`
	Content  []*Node        `json:"content"`
}

// MarshalJSON encodes the node in the CMS wire format. Collections are
// always encoded as empty arrays or objects, never null.
func (n *Node) MarshalJSON() ([]byte, error) {
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}

	if n.NodeType == NodeText {
		marks := n.Marks
		if marks == nil {
			marks = []Mark{}
		}
		return json.Marshal(textNode{NodeType: n.NodeType, Value: n.Value, Marks: marks, Data: data})
	}

	content := n.Content
	if content == nil {
		content = []*Node{}
	}
	return json.Marshal(elementNode{NodeType: n.NodeType, Data: data, Content: content})
}

// URI returns the link target of a hyperlink node.
func (n *Node) URI() string {
	uri, _ := n.Data["uri"].(string)
	return uri
}

// AssetID returns the asset reference of an embedded asset node.
func (n *Node) AssetID() string {
	target, ok := n.Data["target"].(AssetLink)
	if !ok {
		return ""
	}
	return target.Sys.ID
}

// AssetLink references an asset from an embedded-asset block.
type AssetLink struct {
	Sys LinkSys `json:"sys"`
}

// LinkSys is the system metadata of a link to another CMS object.
type LinkSys struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
}

// Text returns a text node with no marks.
func Text(value string) *Node {
	return &Node{NodeType: NodeText, Data: map[string]any{}, Marks: []Mark{}, Value: value}
}

// Hyperlink returns a hyperlink node pointing at uri.
func Hyperlink(uri string, content ...*Node) *Node {
	return newNode(NodeHyperlink, map[string]any{"uri": uri}, content)
}

// Paragraph returns a paragraph holding inline nodes.
func Paragraph(inlines ...*Node) *Node {
	return newNode(NodeParagraph, nil, inlines)
}

// Heading returns a heading of the given level. Levels outside 1..6 are
// clamped into range.
func Heading(level int, inlines ...*Node) *Node {
	level = min(max(level, 1), 6)
	t, _ := HeadingType(level)
	return newNode(t, nil, inlines)
}

// UnorderedList returns a bulleted list of list items.
func UnorderedList(items ...*Node) *Node {
	return newNode(NodeUnorderedList, nil, items)
}

// OrderedList returns a numbered list of list items.
func OrderedList(items ...*Node) *Node {
	return newNode(NodeOrderedList, nil, items)
}

// ListItem returns a list item wrapping a paragraph.
func ListItem(p *Node) *Node {
	return newNode(NodeListItem, nil, []*Node{p})
}

// Blockquote returns a quote wrapping a paragraph.
func Blockquote(p *Node) *Node {
	return newNode(NodeBlockquote, nil, []*Node{p})
}

// HR returns a horizontal rule.
func HR() *Node {
	return newNode(NodeHR, nil, nil)
}

// EmbeddedAsset returns a block embedding the asset with the given id.
func EmbeddedAsset(id string) *Node {
	return newNode(NodeEmbeddedAsset, map[string]any{
		"target": AssetLink{Sys: LinkSys{ID: id, Type: "Link", LinkType: "Asset"}},
	}, nil)
}

func newNode(t NodeType, data map[string]any, content []*Node) *Node {
	if data == nil {
		data = map[string]any{}
	}
	if content == nil {
		content = []*Node{}
	}
	return &Node{NodeType: t, Data: data, Content: content}
}
