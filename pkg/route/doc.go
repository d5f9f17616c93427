// Package route implements pattern registration and path matching for
// the navigation engine.
//
// # Patterns
//
// A pattern is a /-separated template. A segment either is a literal
// token or begins with a colon, marking a parameter capture:
//
//	/                → matches only the root path
//	/about           → matches /about
//	/users/:id       → matches /users/42 with params {id: "42"}
//
// Matching is deterministic: the query string is ignored, segment counts
// must be equal, and the first registered route that matches wins. There
// are no wildcards, no prefix matches, and no parameter validation:
// any non-empty segment satisfies a :name capture.
//
// # Usage
//
//	reg := route.NewRegistry()
//	reg.Add("/users/:id", showUser)
//
//	result, ok := route.Match(reg.Entries(), "/users/42?tab=info")
//	if ok {
//	    // result.Params["id"] == "42"
//	}
package route
