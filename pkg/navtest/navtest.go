package navtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/passage-dev/passage/pkg/content"
	"github.com/passage-dev/passage/pkg/dom"
	"github.com/passage-dev/passage/pkg/history"
	"github.com/passage-dev/passage/pkg/nav"
	"github.com/passage-dev/passage/pkg/route"
)

// Harness bundles an engine with its memory container and surface, and
// records the navigation lifecycle for assertions.
type Harness struct {
	Engine    *Engine
	Container *dom.MemContainer
	Surface   *history.Memory

	recorder *Recorder
}

// Engine aliases nav.Engine so harness users need only this package and
// the packages their handlers touch.
type Engine = nav.Engine

// Builder allows fluent construction of test harnesses.
type Builder struct {
	initial string
	routes  []routeSpec
	opts    []nav.Option
}

type routeSpec struct {
	pattern string
	handler route.Handler
	opts    []route.Option
}

// New creates a harness builder.
//
// Example:
//
//	h := navtest.New().
//	    At("/").
//	    Route("/users/:id", showUser).
//	    Build(t)
func New() *Builder {
	return &Builder{initial: "/"}
}

// At sets the surface's initial location (default "/").
func (b *Builder) At(path string) *Builder {
	b.initial = path
	return b
}

// Route registers a route on the engine under construction.
func (b *Builder) Route(pattern string, h route.Handler, opts ...route.Option) *Builder {
	b.routes = append(b.routes, routeSpec{pattern: pattern, handler: h, opts: opts})
	return b
}

// TextRoute registers a route that always renders the given markup.
func (b *Builder) TextRoute(pattern, markup string) *Builder {
	return b.Route(pattern, func(ctx context.Context, params map[string]string) (content.Content, error) {
		return content.Text(markup), nil
	})
}

// With adds engine options.
func (b *Builder) With(opts ...nav.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build constructs the harness, failing the test on any setup error.
func (b *Builder) Build(t *testing.T) *Harness {
	t.Helper()

	container := dom.NewMemContainer()
	surface := history.NewMemory(b.initial)
	recorder := &Recorder{}

	opts := append([]nav.Option{nav.WithListener(recorder)}, b.opts...)
	engine, err := nav.New(container, surface, opts...)
	if err != nil {
		t.Fatalf("navtest: New: %v", err)
	}
	for _, r := range b.routes {
		if err := engine.AddRoute(r.pattern, r.handler, r.opts...); err != nil {
			t.Fatalf("navtest: AddRoute(%q): %v", r.pattern, err)
		}
	}

	return &Harness{
		Engine:    engine,
		Container: container,
		Surface:   surface,
		recorder:  recorder,
	}
}

// Go navigates and fails the test on error.
func (h *Harness) Go(t *testing.T, path string, opts ...nav.NavigateOption) {
	t.Helper()
	if err := h.Engine.NavigateTo(context.Background(), path, opts...); err != nil {
		t.Fatalf("navtest: NavigateTo(%q): %v", path, err)
	}
}

// Outcomes returns the recorded navigation outcomes in completion order.
func (h *Harness) Outcomes() []nav.Outcome {
	return h.recorder.Outcomes()
}

// ExpectHTML fails the test unless the container holds exactly want.
func (h *Harness) ExpectHTML(t *testing.T, want string) {
	t.Helper()
	if got := h.Container.HTML(); got != want {
		t.Errorf("container = %q, want %q", got, want)
	}
}

// ExpectContains fails the test unless the container's markup contains want.
func (h *Harness) ExpectContains(t *testing.T, want string) {
	t.Helper()
	if got := h.Container.HTML(); !strings.Contains(got, want) {
		t.Errorf("container %q does not contain %q", got, want)
	}
}

// Recorder is a nav.Listener that records finished navigations.
type Recorder struct {
	mu       sync.Mutex
	started  []string
	finished []Finished
}

// Finished is one recorded navigation completion.
type Finished struct {
	Path    string
	Outcome nav.Outcome
	Elapsed time.Duration
}

// NavigationStarted implements nav.Listener.
func (r *Recorder) NavigationStarted(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, path)
}

// NavigationFinished implements nav.Listener.
func (r *Recorder) NavigationFinished(path string, outcome nav.Outcome, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, Finished{Path: path, Outcome: outcome, Elapsed: elapsed})
}

// Started returns the paths of started navigations.
func (r *Recorder) Started() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.started...)
}

// Outcomes returns the outcomes of finished navigations in order.
func (r *Recorder) Outcomes() []nav.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]nav.Outcome, len(r.finished))
	for i, f := range r.finished {
		out[i] = f.Outcome
	}
	return out
}
