package history

import "testing"

func TestMemoryInitialLocation(t *testing.T) {
	m := NewMemory("/start")
	if m.Location() != "/start" {
		t.Errorf("Location = %q, want /start", m.Location())
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestMemoryDefaultsToRoot(t *testing.T) {
	m := NewMemory("")
	if m.Location() != "/" {
		t.Errorf("Location = %q, want /", m.Location())
	}
}

func TestPushAdvancesPointer(t *testing.T) {
	m := NewMemory("/")
	m.Push("/about", map[string]any{"from": "/"})

	if m.Location() != "/about" {
		t.Errorf("Location = %q, want /about", m.Location())
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
	state, ok := m.State().(map[string]any)
	if !ok || state["from"] != "/" {
		t.Errorf("State = %#v", m.State())
	}
}

func TestReplaceDoesNotGrowStack(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a", nil)
	m.Replace("/b", nil)

	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
	if m.Location() != "/b" {
		t.Errorf("Location = %q, want /b", m.Location())
	}
}

func TestBackForwardFirePopCallback(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a", nil)
	m.Push("/b", nil)

	var popped []string
	m.OnPop(func(path string) { popped = append(popped, path) })

	m.Back()
	m.Back()
	m.Forward()

	want := []string{"/a", "/", "/a"}
	if len(popped) != len(want) {
		t.Fatalf("popped = %v, want %v", popped, want)
	}
	for i := range want {
		if popped[i] != want[i] {
			t.Errorf("popped[%d] = %q, want %q", i, popped[i], want[i])
		}
	}
}

func TestBackAtOldestIsNoOp(t *testing.T) {
	m := NewMemory("/")
	fired := false
	m.OnPop(func(string) { fired = true })

	m.Back()
	if fired {
		t.Error("pop callback fired at oldest entry")
	}
	if m.Location() != "/" {
		t.Errorf("Location = %q", m.Location())
	}
}

func TestForwardAtNewestIsNoOp(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a", nil)
	fired := false
	m.OnPop(func(string) { fired = true })

	m.Forward()
	if fired {
		t.Error("pop callback fired at newest entry")
	}
}

func TestPushAfterBackDiscardsForwardEntries(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a", nil)
	m.Push("/b", nil)
	m.OnPop(func(string) {})
	m.Back()

	m.Push("/c", nil)
	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
	if m.Location() != "/c" {
		t.Errorf("Location = %q, want /c", m.Location())
	}

	// Forward history is gone.
	m.Forward()
	if m.Location() != "/c" {
		t.Errorf("Location after Forward = %q, want /c", m.Location())
	}
}

func TestBridgeDelegates(t *testing.T) {
	m := NewMemory("/")
	b := NewBridge(m)

	b.Push("/x", nil)
	if b.Location() != "/x" {
		t.Errorf("Location = %q, want /x", b.Location())
	}

	b.Replace("/y", nil)
	if m.Location() != "/y" || m.Len() != 2 {
		t.Errorf("Location = %q Len = %d", m.Location(), m.Len())
	}

	var got string
	b.Listen(func(path string) { got = path })
	m.Back()
	if got != "/" {
		t.Errorf("pop relayed %q, want /", got)
	}
}
