// Package nav implements the client-side navigation engine.
//
// The Engine maps paths to registered route handlers, runs the
// navigation lifecycle, and renders resolved content into a
// host-supplied container:
//
//	guard → beforeEach → history commit → content resolution → afterEach
//
// Navigation can be vetoed at two points (a per-call guard and the
// global beforeEach hook); both vetoes are silent no-ops. Handler
// failures are recovered into rendered error content, and unmatched
// paths render Not-Found content; neither aborts the cycle.
//
// # Usage
//
//	engine, err := nav.New(container, history.NewMemory("/"))
//	engine.AddRoute("/", home)
//	engine.AddRoute("/users/:id", showUser)
//	engine.SetHook("afterEach", func(to string) { ... })
//
//	engine.Start(ctx)                  // initial load + back/forward wiring
//	engine.NavigateTo(ctx, "/users/42")
//
// Concurrent navigations are sequenced with a monotonic token: when two
// resolutions race, only the most recently committed one mounts; the
// stale result is discarded.
package nav
