// Package dev provides the development server and live reload functionality.
//
// This package implements:
//   - File watching for CSS, HTML, and asset changes
//   - A static asset server with history fallback to the application shell
//   - WebSocket-based browser refresh
//
// # Architecture
//
// The development server consists of three components:
//
//   - Watcher: polls the file system for changes
//   - Server: serves the shell and static files
//   - ReloadServer: notifies browsers of changes via WebSocket
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Live Reload Protocol
//
// The browser connects to /_passage/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}            // Triggers full page reload
//	{"type": "css", "file": "..."} // Triggers CSS-only reload
//
// Live reload can be disabled via passage.json (dev.hotReload=false).
// Watch paths are the static directory plus any entries in dev.watch.
package dev
