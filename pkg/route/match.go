package route

import "strings"

// segment is one parsed pattern segment.
type segment struct {
	// literal is the token for static segments.
	literal string

	// isParam indicates a :name segment.
	isParam bool

	// paramName is the capture name (without the colon).
	paramName string
}

// MatchResult pairs a matched route with the merged parameters.
// Ephemeral, produced per navigation.
type MatchResult struct {
	Route  *Route
	Params map[string]string
}

// Match runs the path against the routes in order and returns the first
// match. The query string is stripped before matching; leading and
// trailing slashes are insignificant. A route matches only when segment
// counts are equal, every literal segment compares verbatim, and every
// :name segment captures the corresponding path segment as-is.
func Match(routes []*Route, path string) (*MatchResult, bool) {
	path, _, _ = strings.Cut(path, "?")
	segs := splitPath(path)

	for _, rt := range routes {
		params, ok := matchSegments(rt.segments, segs)
		if !ok {
			continue
		}

		merged := make(map[string]string, len(rt.StaticParams)+len(params))
		for k, v := range rt.StaticParams {
			merged[k] = v
		}
		for k, v := range params {
			merged[k] = v
		}
		return &MatchResult{Route: rt, Params: merged}, true
	}
	return nil, false
}

// matchSegments compares a parsed pattern against path segments.
func matchSegments(pattern []segment, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}

	var params map[string]string
	for i, ps := range pattern {
		if ps.isParam {
			if params == nil {
				params = make(map[string]string)
			}
			params[ps.paramName] = segs[i]
			continue
		}
		if ps.literal != segs[i] {
			return nil, false
		}
	}
	return params, true
}

// parsePattern splits a route pattern into segments.
func parsePattern(pattern string) []segment {
	parts := splitPath(pattern)
	segs := make([]segment, 0, len(parts))
	for _, p := range parts {
		if strings.HasPrefix(p, ":") {
			segs = append(segs, segment{isParam: true, paramName: p[1:]})
		} else {
			segs = append(segs, segment{literal: p})
		}
	}
	return segs
}

// splitPath splits a path into segments, discarding empty ones so that
// leading and trailing slashes are insignificant.
func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
