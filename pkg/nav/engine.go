package nav

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/passage-dev/passage/internal/errors"
	"github.com/passage-dev/passage/pkg/content"
	"github.com/passage-dev/passage/pkg/dom"
	"github.com/passage-dev/passage/pkg/history"
	"github.com/passage-dev/passage/pkg/render"
	"github.com/passage-dev/passage/pkg/route"
)

// ErrInvalidContainer is returned by New for a missing container.
var ErrInvalidContainer = errors.New("E001")

// ErrInvalidSurface is returned by New for a missing history surface.
var ErrInvalidSurface = errors.New("E004")

// NotFoundHandler produces content when no route matches. It receives
// the unmatched path.
type NotFoundHandler func(ctx context.Context, path string) (content.Content, error)

// Engine is the navigation controller. It owns the current-path state,
// runs the guard/hook/history/render sequence, and renders resolved
// content into the container.
//
// Construct with New; the zero value is not usable.
type Engine struct {
	registry  *route.Registry
	container dom.Container
	bridge    *history.Bridge
	logger    *slog.Logger
	listeners []Listener
	notFound  NotFoundHandler

	// seq is the navigation sequence token. A resolution whose token is
	// stale by mount time lost the container to a later navigation and
	// is discarded.
	seq atomic.Uint64

	mu          sync.Mutex
	currentPath string
	beforeEach  func(from, to string) bool
	afterEach   func(to string)
}

// New creates an engine mounting into container and tracking history
// through surface.
func New(container dom.Container, surface history.Surface, opts ...Option) (*Engine, error) {
	if container == nil {
		return nil, ErrInvalidContainer
	}
	if surface == nil {
		return nil, ErrInvalidSurface
	}

	e := &Engine{
		registry:  route.NewRegistry(),
		container: container,
		bridge:    history.NewBridge(surface),
		logger:    slog.Default().With("component", "nav"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddRoute registers a handler for a pattern. It returns
// route.ErrInvalidHandler if the handler is nil. Registration order
// defines match priority; re-registering a pattern overwrites in place.
func (e *Engine) AddRoute(pattern string, h route.Handler, opts ...route.Option) error {
	return e.registry.Add(pattern, h, opts...)
}

// Routes returns the underlying registry.
func (e *Engine) Routes() *route.Registry {
	return e.registry
}

// SetHook installs a global navigation hook. Recognized names are
// "beforeEach" (func(from, to string) bool, may veto) and "afterEach"
// (func(to string)). An unrecognized name or a callback of the wrong
// shape is silently ignored. At most one callback per hook;
// last-set-wins. Returns the engine for chaining.
func (e *Engine) SetHook(name string, fn any) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch name {
	case "beforeEach":
		if f, ok := fn.(func(from, to string) bool); ok {
			e.beforeEach = f
		}
	case "afterEach":
		if f, ok := fn.(func(to string)); ok {
			e.afterEach = f
		}
	}
	return e
}

// SetNotFound overrides the built-in Not-Found content with a handler.
// Equivalent to the WithNotFound construction option. Returns the engine
// for chaining.
func (e *Engine) SetNotFound(h NotFoundHandler) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notFound = h
	return e
}

// CurrentPath returns the last path for which rendering was attempted.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// Start performs the initial-load resolution for the surface's current
// location and subscribes to externally triggered history changes
// (back/forward). The supplied context is also used for pop-triggered
// resolutions.
func (e *Engine) Start(ctx context.Context) error {
	e.bridge.Listen(func(path string) {
		e.external(ctx, path)
	})
	return e.external(ctx, e.bridge.Location())
}

// NavigateTo navigates to path. Guard and beforeEach vetoes are silent
// no-ops, as is navigating to the current path without WithForce. The
// call blocks until content resolution and rendering complete. Handler
// failures are recovered into rendered error content; only a malformed
// path or unmountable content surface as errors.
func (e *Engine) NavigateTo(ctx context.Context, path string, opts ...NavigateOption) error {
	var o NavigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	e.mu.Lock()
	from := e.currentPath

	if o.Guard != nil && !o.Guard(from, path) {
		e.mu.Unlock()
		return nil
	}
	if e.beforeEach != nil && !e.beforeEach(from, path) {
		e.mu.Unlock()
		return nil
	}
	if path == from && !o.Force {
		e.mu.Unlock()
		return nil
	}

	canonPath, query, changed, err := route.Canonicalize(path)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	finalPath := buildFinalPath(canonPath, query, o.Query)

	state := o.State
	if state == nil {
		state = map[string]any{}
	}

	// A canonicalization rewrite replaces instead of pushing so the
	// stack does not collect near-duplicate entries.
	if o.Replace || changed {
		e.bridge.Replace(finalPath, state)
	} else {
		e.bridge.Push(finalPath, state)
	}

	// Commit point.
	e.currentPath = finalPath
	token := e.seq.Add(1)
	e.mu.Unlock()

	return e.resolve(ctx, finalPath, token)
}

// external handles history pops and the initial load: no guard, no
// beforeEach, no history push, since the surface already moved its
// pointer.
func (e *Engine) external(ctx context.Context, path string) error {
	e.mu.Lock()
	e.currentPath = path
	token := e.seq.Add(1)
	e.mu.Unlock()

	return e.resolve(ctx, path, token)
}

// resolve runs route matching and handler execution for the committed
// path, then mounts the result unless a later navigation superseded it.
func (e *Engine) resolve(ctx context.Context, fullPath string, token uint64) error {
	e.notifyStarted(fullPath)
	start := time.Now()

	var (
		ct      content.Content
		outcome Outcome
	)

	res, ok := route.Match(e.registry.Entries(), fullPath)
	if !ok {
		ct = e.resolveNotFound(ctx, fullPath)
		outcome = OutcomeNotFound
	} else {
		resolved, err := res.Route.Handler(ctx, res.Params)
		if err != nil {
			e.logger.Error("route handler failed",
				"path", fullPath,
				"pattern", res.Route.Pattern,
				"error", err)
			ct = render.Error(err.Error())
			outcome = OutcomeHandlerError
		} else {
			ct = resolved
			outcome = OutcomeOK
		}
	}

	e.mu.Lock()
	if token != e.seq.Load() {
		e.mu.Unlock()
		e.logger.Debug("discarding superseded navigation", "path", fullPath)
		e.notifyFinished(fullPath, OutcomeSuperseded, time.Since(start))
		return nil
	}

	if err := render.Mount(e.container, ct); err != nil {
		e.mu.Unlock()
		e.notifyFinished(fullPath, OutcomeRenderError, time.Since(start))
		return err
	}
	after := e.afterEach
	e.mu.Unlock()

	if after != nil {
		after(fullPath)
	}
	e.notifyFinished(fullPath, outcome, time.Since(start))
	return nil
}

// resolveNotFound produces Not-Found content, preferring the configured
// override and falling back to the built-in markup on failure.
func (e *Engine) resolveNotFound(ctx context.Context, path string) content.Content {
	e.mu.Lock()
	notFound := e.notFound
	e.mu.Unlock()

	if notFound != nil {
		ct, err := notFound(ctx, path)
		if err == nil && ct.Valid() {
			return ct
		}
		if err != nil {
			e.logger.Error("not-found handler failed", "path", path, "error", err)
		}
	}
	return render.NotFound()
}

// buildFinalPath merges the query option into the destination per
// standard URL semantics: option entries override same-named keys
// already present in the path.
func buildFinalPath(canonPath, rawQuery string, extra map[string]string) string {
	if rawQuery == "" && len(extra) == 0 {
		return canonPath
	}

	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		vals = url.Values{}
	}
	for k, v := range extra {
		vals.Set(k, v)
	}
	if len(vals) == 0 {
		return canonPath
	}
	return canonPath + "?" + vals.Encode()
}
