package render

import (
	"fmt"
	"html"

	"github.com/passage-dev/passage/pkg/content"
)

// NotFound returns the content rendered when no route matches.
func NotFound() content.Content {
	return content.Text("<h1>404 - Page Not Found</h1>")
}

// Error returns the content rendered when a route handler fails.
// The message is escaped before being placed in markup.
func Error(msg string) content.Content {
	return content.Text(fmt.Sprintf(
		`<div class="passage-error"><h1>Something went wrong</h1><p>%s</p></div>`,
		html.EscapeString(msg),
	))
}
