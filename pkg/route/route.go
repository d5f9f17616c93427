package route

import (
	"context"
	"sync"

	"github.com/passage-dev/passage/internal/errors"
	"github.com/passage-dev/passage/pkg/content"
)

// ErrInvalidHandler is returned when a route is registered with a nil handler.
var ErrInvalidHandler = errors.New("E002")

// Handler resolves a matched route into renderable content. The merged
// parameters contain the route's static params overlaid by the dynamic
// captures. Handlers may block; the engine waits for completion before
// rendering. A returned error is recovered into rendered error content.
type Handler func(ctx context.Context, params map[string]string) (content.Content, error)

// Route is a registered pattern with its handler and static params.
// Routes are immutable once registered.
type Route struct {
	// Pattern is the path template, e.g. "/users/:id".
	Pattern string

	// Handler resolves the route's content.
	Handler Handler

	// StaticParams are merged into every match of this route. Dynamic
	// captures win on key collision.
	StaticParams map[string]string

	segments []segment
}

// Option configures route registration.
type Option func(*Route)

// WithStaticParams attaches static parameters to the route.
func WithStaticParams(params map[string]string) Option {
	return func(r *Route) {
		r.StaticParams = params
	}
}

// Registry is an ordered pattern-to-route mapping. Insertion order
// defines match priority; re-registering an existing pattern overwrites
// the entry in place, keeping its original position.
type Registry struct {
	mu        sync.RWMutex
	routes    []*Route
	byPattern map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPattern: make(map[string]int),
	}
}

// Add registers a handler for a pattern. It returns ErrInvalidHandler if
// the handler is nil.
func (r *Registry) Add(pattern string, h Handler, opts ...Option) error {
	if h == nil {
		return ErrInvalidHandler
	}

	rt := &Route{
		Pattern:  pattern,
		Handler:  h,
		segments: parsePattern(pattern),
	}
	for _, opt := range opts {
		opt(rt)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byPattern[pattern]; ok {
		r.routes[idx] = rt
		return nil
	}
	r.byPattern[pattern] = len(r.routes)
	r.routes = append(r.routes, rt)
	return nil
}

// Entries returns the registered routes in registration order.
func (r *Registry) Entries() []*Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
