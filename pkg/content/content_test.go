package content

import (
	"testing"

	"github.com/passage-dev/passage/pkg/dom"
)

func TestTextContent(t *testing.T) {
	c := Text("<h1>Hi</h1>")
	if c.Kind() != KindText {
		t.Errorf("Kind = %v, want Text", c.Kind())
	}
	if c.TextValue() != "<h1>Hi</h1>" {
		t.Errorf("TextValue = %q", c.TextValue())
	}
	if !c.Valid() {
		t.Error("text content should be valid")
	}
}

func TestNodeContent(t *testing.T) {
	n := dom.NewElem("div")
	c := Node(n)
	if c.Kind() != KindNode {
		t.Errorf("Kind = %v, want Node", c.Kind())
	}
	if c.NodeValue() != n {
		t.Error("NodeValue did not round-trip")
	}
}

func TestNilNodeIsInvalid(t *testing.T) {
	c := Node(nil)
	if c.Valid() {
		t.Error("Node(nil) must not be valid")
	}
}

func TestZeroValueInvalid(t *testing.T) {
	var c Content
	if c.Valid() {
		t.Error("zero value must be invalid")
	}
	if c.Kind() != KindInvalid {
		t.Errorf("Kind = %v, want Invalid", c.Kind())
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindInvalid: "Invalid",
		KindText:    "Text",
		KindNode:    "Node",
		Kind(42):    "Invalid",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}
