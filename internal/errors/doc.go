// Package errors provides structured, actionable error messages for Passage.
//
// Each error carries a stable code (e.g. "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Error Categories
//
// Errors are organized into categories:
//   - navigation: engine lifecycle errors (invalid container, bad paths)
//   - registry: route registration errors (nil handlers)
//   - render: content mounting errors (unrenderable content)
//   - config: passage.json parsing and validation errors
//   - cli: command-line tooling errors
//   - deploy: asset upload errors
//
// # Usage
//
//	err := errors.New("E002").
//	    WithSuggestion("Pass a non-nil route.Handler to AddRoute")
//
//	fmt.Println(err.Format())
package errors
