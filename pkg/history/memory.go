package history

import "sync"

// Entry is a single history record.
type Entry struct {
	Path  string
	State any
}

// Memory is an in-memory Surface backed by an ordered stack and a
// pointer into it. Back and Forward move the pointer and fire the pop
// callback, mimicking browser back/forward.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	onPop   func(path string)
}

// NewMemory creates a memory surface with a single initial entry.
func NewMemory(initial string) *Memory {
	if initial == "" {
		initial = "/"
	}
	return &Memory{
		entries: []Entry{{Path: initial}},
	}
}

// Location implements Surface.
func (m *Memory) Location() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index].Path
}

// Push implements Surface. Entries ahead of the pointer are discarded,
// matching browser semantics after a back-then-navigate sequence.
func (m *Memory) Push(path string, state any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:m.index+1], Entry{Path: path, State: state})
	m.index = len(m.entries) - 1
}

// Replace implements Surface.
func (m *Memory) Replace(path string, state any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = Entry{Path: path, State: state}
}

// OnPop implements Surface.
func (m *Memory) OnPop(fn func(path string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPop = fn
}

// Back moves the pointer one entry back and fires the pop callback.
// At the oldest entry it is a no-op.
func (m *Memory) Back() {
	m.mu.Lock()
	if m.index == 0 {
		m.mu.Unlock()
		return
	}
	m.index--
	path, fn := m.entries[m.index].Path, m.onPop
	m.mu.Unlock()

	if fn != nil {
		fn(path)
	}
}

// Forward moves the pointer one entry forward and fires the pop callback.
// At the newest entry it is a no-op.
func (m *Memory) Forward() {
	m.mu.Lock()
	if m.index >= len(m.entries)-1 {
		m.mu.Unlock()
		return
	}
	m.index++
	path, fn := m.entries[m.index].Path, m.onPop
	m.mu.Unlock()

	if fn != nil {
		fn(path)
	}
}

// Len returns the number of entries in the stack.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// State returns the state stored on the current entry.
func (m *Memory) State() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index].State
}
