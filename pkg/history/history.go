package history

// Surface abstracts the host's location and history mechanism. Browser
// hosts wrap their history bindings; tests and headless hosts use Memory.
type Surface interface {
	// Location returns the current full path, including any query string.
	Location() string

	// Push adds a new entry with the given path and opaque state.
	Push(path string, state any)

	// Replace overwrites the current entry with the given path and state.
	Replace(path string, state any)

	// OnPop registers a callback fired when the history pointer moves
	// without the engine's involvement (back/forward). At most one
	// callback is registered; last-set-wins.
	OnPop(fn func(path string))
}

// Bridge translates engine commit intents into surface operations and
// relays externally triggered pops back to the engine. It owns no
// navigation policy of its own.
type Bridge struct {
	surface Surface
}

// NewBridge wraps a surface.
func NewBridge(s Surface) *Bridge {
	return &Bridge{surface: s}
}

// Push records a new history entry for a committed navigation.
func (b *Bridge) Push(path string, state any) {
	b.surface.Push(path, state)
}

// Replace overwrites the current history entry for a committed navigation.
func (b *Bridge) Replace(path string, state any) {
	b.surface.Replace(path, state)
}

// Location returns the surface's current full path.
func (b *Bridge) Location() string {
	return b.surface.Location()
}

// Listen subscribes to externally triggered history changes.
func (b *Bridge) Listen(fn func(path string)) {
	b.surface.OnPop(fn)
}
