package nav

import (
	"context"

	"github.com/passage-dev/passage/pkg/dom"
)

// HandleActivation processes a click-like activation bubbling up from
// target. It searches target's ancestors (inclusive) for the nearest
// element carrying the data-nav marker, or an anchor carrying data-link.
// The destination comes from the data-nav value, falling back to the
// element's href.
//
// It returns true when the activation was consumed and a plain
// navigation was invoked. A false return means no navigation target was
// found and the host should let its default behavior proceed; hosts may
// therefore defer default suppression until the destination is
// confirmed.
func (e *Engine) HandleActivation(ctx context.Context, target dom.Element) bool {
	el := dom.Closest(target, func(el dom.Element) bool {
		if _, ok := el.Attr(dom.AttrNav); ok {
			return true
		}
		if el.Tag() == "a" {
			_, ok := el.Attr(dom.AttrLink)
			return ok
		}
		return false
	})
	if el == nil {
		return false
	}

	dest, ok := el.Attr(dom.AttrNav)
	if !ok || dest == "" {
		dest, _ = el.Attr(dom.AttrHref)
	}
	if dest == "" {
		return false
	}

	if err := e.NavigateTo(ctx, dest); err != nil {
		e.logger.Error("link navigation failed", "dest", dest, "error", err)
	}
	return true
}
