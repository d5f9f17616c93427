package dom

// Navigation marker attributes. Any element carrying AttrNav is
// intercepted on activation; anchors carrying AttrLink are intercepted
// and navigate to their href.
const (
	AttrNav  = "data-nav"
	AttrLink = "data-link"
	AttrHref = "href"
)

// Link creates an anchor element with client-side navigation.
// When activated, the engine intercepts the click instead of letting the
// host perform a full page load.
func Link(href string, text string) *Elem {
	return NewElem("a",
		Attr{Key: AttrHref, Value: href},
		Attr{Key: AttrLink, Value: "true"},
	).SetText(text)
}

// NavElem creates a non-anchor element that navigates to dest on activation.
func NavElem(tag, dest string) *Elem {
	return NewElem(tag, Attr{Key: AttrNav, Value: dest})
}

// DataLink creates the anchor attribute that enables client-side navigation.
func DataLink() Attr {
	return Attr{Key: AttrLink, Value: "true"}
}

// NavAttr creates the navigation marker attribute with a destination.
func NavAttr(dest string) Attr {
	return Attr{Key: AttrNav, Value: dest}
}
