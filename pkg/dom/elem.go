package dom

import (
	"html"
	"sort"
	"strings"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// Elem is an in-memory element. It implements both Element (for
// activation handling) and Node (for rendering), and is used by tests,
// the dev server shell, and headless hosts.
type Elem struct {
	tag      string
	attrs    map[string]string
	parent   *Elem
	children []*Elem
	text     string
}

// NewElem creates an element with the given tag and attributes.
func NewElem(tag string, attrs ...Attr) *Elem {
	e := &Elem{
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string, len(attrs)),
	}
	for _, a := range attrs {
		e.attrs[a.Key] = a.Value
	}
	return e
}

// NewText creates a text-only element.
func NewText(text string) *Elem {
	return &Elem{text: text}
}

// Tag implements Element.
func (e *Elem) Tag() string { return e.tag }

// Attr implements Element.
func (e *Elem) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute value.
func (e *Elem) SetAttr(name, value string) *Elem {
	e.attrs[name] = value
	return e
}

// Parent implements Element.
func (e *Elem) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// AppendChild attaches a child and sets its parent pointer.
func (e *Elem) AppendChild(child *Elem) *Elem {
	child.parent = e
	e.children = append(e.children, child)
	return e
}

// Children returns the child elements.
func (e *Elem) Children() []*Elem { return e.children }

// HTML implements Node. Attributes are emitted in sorted order so the
// output is deterministic.
func (e *Elem) HTML() string {
	if e.tag == "" {
		return html.EscapeString(e.text)
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.tag)

	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(e.attrs[k]))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	if e.text != "" {
		b.WriteString(html.EscapeString(e.text))
	}
	for _, c := range e.children {
		b.WriteString(c.HTML())
	}

	if !voidTags[e.tag] {
		b.WriteString("</")
		b.WriteString(e.tag)
		b.WriteString(">")
	}
	return b.String()
}

// SetText sets the element's inline text.
func (e *Elem) SetText(text string) *Elem {
	e.text = text
	return e
}

// voidTags have no closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}
