package nav

import "log/slog"

// Option configures the engine at construction.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default is
// slog.Default().With("component", "nav").
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithListener registers a navigation lifecycle listener.
// Multiple listeners may be registered.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listeners = append(e.listeners, l)
		}
	}
}

// WithNotFound overrides the built-in Not-Found content with a handler.
// The handler is invoked with empty params; a failure falls back to the
// built-in content.
func WithNotFound(h NotFoundHandler) Option {
	return func(e *Engine) {
		e.notFound = h
	}
}

// Guard is a caller-supplied predicate that can veto a single
// navigation. It receives the current path and the destination.
type Guard func(from, to string) bool

// NavigateOptions configures a single NavigateTo call.
type NavigateOptions struct {
	// State is the opaque state pushed with the history entry.
	State any

	// Force re-runs the navigation even when the destination equals the
	// current path.
	Force bool

	// Guard can veto this navigation before any state changes.
	Guard Guard

	// Query entries are appended to the destination's query string,
	// overriding same-named keys already present in the path.
	Query map[string]string

	// Replace overwrites the current history entry instead of pushing.
	Replace bool
}

// NavigateOption is a functional option for NavigateTo.
type NavigateOption func(*NavigateOptions)

// WithState attaches opaque state to the history entry.
func WithState(state any) NavigateOption {
	return func(o *NavigateOptions) {
		o.State = state
	}
}

// WithForce re-runs the navigation even for the current path.
func WithForce() NavigateOption {
	return func(o *NavigateOptions) {
		o.Force = true
	}
}

// WithGuard sets a veto predicate for this navigation.
func WithGuard(g Guard) NavigateOption {
	return func(o *NavigateOptions) {
		o.Guard = g
	}
}

// WithQuery appends query parameters to the destination URL.
func WithQuery(query map[string]string) NavigateOption {
	return func(o *NavigateOptions) {
		o.Query = query
	}
}

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}
