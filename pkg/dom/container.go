package dom

import (
	"strings"
	"sync"
)

// MemContainer is an in-memory Container. It records exactly one of raw
// markup or a list of child nodes, mirroring how a real container holds
// either substituted HTML or attached children.
type MemContainer struct {
	mu       sync.Mutex
	markup   string
	children []Node
}

// NewMemContainer creates an empty in-memory container.
func NewMemContainer() *MemContainer {
	return &MemContainer{}
}

// SetHTML implements Container.
func (c *MemContainer) SetHTML(markup string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markup = markup
	c.children = nil
}

// Clear implements Container.
func (c *MemContainer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markup = ""
	c.children = nil
}

// Append implements Container.
func (c *MemContainer) Append(n Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, n)
}

// HTML returns the container's current content as markup.
func (c *MemContainer) HTML() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.markup != "" {
		return c.markup
	}
	var b strings.Builder
	for _, n := range c.children {
		b.WriteString(n.HTML())
	}
	return b.String()
}

// ChildCount returns the number of attached child nodes.
func (c *MemContainer) ChildCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children)
}
