// Package history abstracts the host's location and history stack.
//
// The engine talks to history through the Surface interface: push or
// replace entries on commit, read the current location, and hear about
// externally triggered moves (back/forward) through a pop callback.
// The Bridge is the thin adapter the engine owns; Memory is the
// reference implementation used by tests and headless hosts.
package history
