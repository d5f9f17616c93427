package dom

// Node is an opaque renderable handle. Hosts provide their own node
// implementation; the engine only needs to know how to serialize one.
type Node interface {
	// HTML returns the markup for this node and its subtree.
	HTML() string
}

// Container is a mount target that always holds exactly the most
// recently rendered content.
type Container interface {
	// SetHTML replaces the container's entire content with raw markup.
	SetHTML(markup string)

	// Clear removes all children from the container.
	Clear()

	// Append attaches a node as a child of the container.
	Append(n Node)
}

// Element is a DOM-like element used for activation (click) handling.
// Implementations wrap whatever the host event system delivers as the
// event target.
type Element interface {
	// Tag returns the lowercase tag name (e.g. "a", "button").
	Tag() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// Parent returns the parent element, or nil at the root.
	Parent() Element
}

// Closest walks from el up through its ancestors (inclusive) and returns
// the first element satisfying pred, or nil if none does.
func Closest(el Element, pred func(Element) bool) Element {
	for cur := el; cur != nil; cur = cur.Parent() {
		if pred(cur) {
			return cur
		}
	}
	return nil
}
