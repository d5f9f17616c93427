// Package render mounts resolved content into a container.
//
// Content is a tagged variant: literal markup text replaces the
// container's content wholesale, while a renderable node is attached as
// the container's sole child. Anything else fails with
// ErrUnrenderableContent without mutating the container.
//
// The package also provides the built-in Not-Found and error fallback
// content used by the navigation engine.
package render
