// Package navtest provides testing helpers for navigation engines.
//
// The harness wires an engine to an in-memory container and history
// surface, records the navigation lifecycle, and offers assertions on
// the rendered markup:
//
//	func TestUserPage(t *testing.T) {
//	    h := navtest.New().
//	        TextRoute("/", "<h1>Home</h1>").
//	        Route("/users/:id", showUser).
//	        Build(t)
//
//	    h.Go(t, "/users/42")
//	    h.ExpectContains(t, "user 42")
//	}
package navtest
