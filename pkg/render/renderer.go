package render

import (
	"github.com/passage-dev/passage/internal/errors"
	"github.com/passage-dev/passage/pkg/content"
	"github.com/passage-dev/passage/pkg/dom"
)

// ErrUnrenderableContent is returned when content is neither markup text
// nor a renderable node. The container is left untouched.
var ErrUnrenderableContent = errors.New("E003")

// Mount replaces the container's content with the resolved content.
// Text content replaces the container's entire content via raw markup
// substitution. Node content clears the container, then attaches the
// node as the sole child. The content kind is checked before any
// mutation so a failed mount never leaves the container half-applied.
func Mount(c dom.Container, ct content.Content) error {
	switch ct.Kind() {
	case content.KindText:
		c.SetHTML(ct.TextValue())
		return nil
	case content.KindNode:
		c.Clear()
		c.Append(ct.NodeValue())
		return nil
	default:
		return ErrUnrenderableContent
	}
}
