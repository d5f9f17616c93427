package render

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/passage-dev/passage/pkg/content"
	"github.com/passage-dev/passage/pkg/dom"
)

func TestMountText(t *testing.T) {
	c := dom.NewMemContainer()

	if err := Mount(c, content.Text("<h1>Home</h1>")); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if c.HTML() != "<h1>Home</h1>" {
		t.Errorf("container = %q", c.HTML())
	}
}

func TestMountTextReplacesPriorContent(t *testing.T) {
	c := dom.NewMemContainer()
	c.SetHTML("<p>old</p>")

	if err := Mount(c, content.Text("<p>new</p>")); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if c.HTML() != "<p>new</p>" {
		t.Errorf("container = %q", c.HTML())
	}
}

func TestMountNodeClearsThenAttaches(t *testing.T) {
	c := dom.NewMemContainer()
	c.Append(dom.NewElem("p").SetText("old"))
	c.Append(dom.NewElem("p").SetText("older"))

	node := dom.NewElem("section").SetText("fresh")
	if err := Mount(c, content.Node(node)); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if c.ChildCount() != 1 {
		t.Errorf("ChildCount = %d, want 1 (sole child)", c.ChildCount())
	}
	if c.HTML() != "<section>fresh</section>" {
		t.Errorf("container = %q", c.HTML())
	}
}

func TestMountInvalidContentLeavesContainerUntouched(t *testing.T) {
	c := dom.NewMemContainer()
	c.SetHTML("<p>keep me</p>")

	var invalid content.Content
	err := Mount(c, invalid)
	if !stderrors.Is(err, ErrUnrenderableContent) {
		t.Fatalf("err = %v, want ErrUnrenderableContent", err)
	}
	if c.HTML() != "<p>keep me</p>" {
		t.Errorf("container mutated: %q", c.HTML())
	}
}

func TestNotFoundContent(t *testing.T) {
	nf := NotFound()
	if nf.Kind() != content.KindText {
		t.Fatalf("Kind = %v", nf.Kind())
	}
	if nf.TextValue() != "<h1>404 - Page Not Found</h1>" {
		t.Errorf("TextValue = %q", nf.TextValue())
	}
}

func TestErrorContentEscapesMessage(t *testing.T) {
	ec := Error(`boom <script>alert(1)</script>`)
	if strings.Contains(ec.TextValue(), "<script>") {
		t.Error("error message was not escaped")
	}
	if !strings.Contains(ec.TextValue(), "boom") {
		t.Error("error message missing")
	}
}
