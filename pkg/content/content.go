package content

import "github.com/passage-dev/passage/pkg/dom"

// Kind is the content type discriminator.
type Kind uint8

const (
	KindInvalid Kind = iota // zero value, not renderable
	KindText                // literal markup text
	KindNode                // opaque renderable node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNode:
		return "Node"
	default:
		return "Invalid"
	}
}

// Content is the result of resolving a route: exactly one of literal
// markup text or a renderable node. The zero value is invalid and will
// be rejected by the renderer.
type Content struct {
	kind Kind
	text string
	node dom.Node
}

// Text creates markup content.
func Text(markup string) Content {
	return Content{kind: KindText, text: markup}
}

// Node creates node content.
func Node(n dom.Node) Content {
	if n == nil {
		return Content{}
	}
	return Content{kind: KindNode, node: n}
}

// Kind returns the content discriminator.
func (c Content) Kind() Kind { return c.kind }

// TextValue returns the markup for KindText content.
func (c Content) TextValue() string { return c.text }

// NodeValue returns the node for KindNode content.
func (c Content) NodeValue() dom.Node { return c.node }

// Valid reports whether the content holds one of the two variants.
func (c Content) Valid() bool {
	return c.kind == KindText || c.kind == KindNode
}
