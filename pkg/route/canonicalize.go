package route

import (
	"strings"

	"github.com/passage-dev/passage/internal/errors"
)

// ErrInvalidPath is returned for paths containing rejected bytes.
var ErrInvalidPath = errors.New("E005")

// Canonicalize normalizes a URL path for navigation. It splits off the
// query string, ensures a leading slash, collapses duplicate slashes,
// and strips the trailing slash except at the root. The changed flag
// reports whether the path portion was rewritten.
func Canonicalize(path string) (canonPath, query string, changed bool, err error) {
	if path == "" {
		return "/", "", true, nil
	}

	canonPath, query, _ = strings.Cut(path, "?")

	// SECURITY: Reject backslash and null
	if strings.Contains(canonPath, "\\") || strings.Contains(canonPath, "\x00") {
		return "", "", false, ErrInvalidPath
	}

	original := canonPath

	if !strings.HasPrefix(canonPath, "/") {
		canonPath = "/" + canonPath
	}

	for strings.Contains(canonPath, "//") {
		canonPath = strings.ReplaceAll(canonPath, "//", "/")
	}

	if len(canonPath) > 1 && strings.HasSuffix(canonPath, "/") {
		canonPath = strings.TrimSuffix(canonPath, "/")
	}

	return canonPath, query, canonPath != original, nil
}
