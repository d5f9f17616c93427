// Package dom defines the host-facing surfaces the navigation engine
// renders into and listens on.
//
// The engine never reaches for ambient globals. Instead, the host
// supplies:
//   - Container: the mount point that holds the rendered content
//   - Element: the activation (click) target abstraction
//   - Node: an opaque renderable handle
//
// The package also ships in-memory implementations (Elem, MemContainer)
// used by tests, the dev server shell, and headless hosts. Browser hosts
// wrap their own DOM bindings in these interfaces.
package dom
