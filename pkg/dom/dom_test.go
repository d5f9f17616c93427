package dom

import (
	"strings"
	"testing"
)

func TestClosestFindsSelf(t *testing.T) {
	a := NewElem("a", Attr{Key: AttrLink, Value: "true"})

	found := Closest(a, func(e Element) bool {
		_, ok := e.Attr(AttrLink)
		return ok
	})
	if found == nil {
		t.Fatal("expected to find the element itself")
	}
}

func TestClosestWalksAncestors(t *testing.T) {
	root := NewElem("div", Attr{Key: AttrNav, Value: "/about"})
	mid := NewElem("span")
	leaf := NewElem("b")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	found := Closest(leaf, func(e Element) bool {
		_, ok := e.Attr(AttrNav)
		return ok
	})
	if found == nil {
		t.Fatal("expected ancestor with data-nav")
	}
	if dest, _ := found.Attr(AttrNav); dest != "/about" {
		t.Errorf("dest = %q, want /about", dest)
	}
}

func TestClosestNoMatch(t *testing.T) {
	leaf := NewElem("b")
	if Closest(leaf, func(e Element) bool { return e.Tag() == "a" }) != nil {
		t.Error("expected nil for no match")
	}
}

func TestElemHTML(t *testing.T) {
	e := NewElem("div", Attr{Key: "class", Value: "page"})
	e.AppendChild(NewElem("h1").SetText("Hello & welcome"))

	got := e.HTML()
	want := `<div class="page"><h1>Hello &amp; welcome</h1></div>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestElemVoidTag(t *testing.T) {
	e := NewElem("br")
	if got := e.HTML(); got != "<br>" {
		t.Errorf("HTML() = %q, want <br>", got)
	}
}

func TestLinkHelper(t *testing.T) {
	l := Link("/about", "About")
	if l.Tag() != "a" {
		t.Errorf("tag = %q, want a", l.Tag())
	}
	if v, ok := l.Attr(AttrLink); !ok || v != "true" {
		t.Errorf("data-link = %q, %v", v, ok)
	}
	if href, _ := l.Attr(AttrHref); href != "/about" {
		t.Errorf("href = %q", href)
	}
	if !strings.Contains(l.HTML(), "About") {
		t.Error("link text missing from markup")
	}
}

func TestMemContainerSetHTMLReplacesChildren(t *testing.T) {
	c := NewMemContainer()
	c.Append(NewElem("p").SetText("old"))
	c.SetHTML("<h1>new</h1>")

	if c.HTML() != "<h1>new</h1>" {
		t.Errorf("HTML() = %q", c.HTML())
	}
	if c.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", c.ChildCount())
	}
}

func TestMemContainerClearThenAppend(t *testing.T) {
	c := NewMemContainer()
	c.SetHTML("<p>old</p>")
	c.Clear()
	c.Append(NewElem("h2").SetText("next"))

	if c.ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d, want 1", c.ChildCount())
	}
	if c.HTML() != "<h2>next</h2>" {
		t.Errorf("HTML() = %q", c.HTML())
	}
}
