package clientload

import (
	"log/slog"
	"strings"
)

// Match returns the routes whose pattern matches the request path, in
// declaration order, and reports whether more than one matched. With
// WarnOnOverlap enabled an overlap logs one diagnostic naming the patterns
// and the path; the result is never changed by it.
func (c Config) Match(path string) ([]RoutePattern, bool) {
	var matched []RoutePattern
	for _, route := range c.Routes {
		if c.matches(path, route.Pattern) {
			matched = append(matched, route)
		}
	}

	overlap := len(matched) > 1
	if overlap && c.WarnOnOverlap {
		patterns := make([]string, len(matched))
		for i, route := range matched {
			patterns[i] = route.Pattern
		}
		c.logger().Warn("multiple route patterns match path",
			slog.String("path", path),
			slog.Any("patterns", patterns),
		)
	}

	return matched, overlap
}

func (c Config) matches(path, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, Wildcard); ok {
		// Greedy byte-wise prefix match, deliberately without an implicit
		// segment boundary: "/user*" matches "/users/5".
		return strings.HasPrefix(c.normalize(path), c.normalize(prefix))
	}
	return c.normalize(path) == c.normalize(pattern)
}

// normalize strips one trailing slash when IgnoreTrailingSlash is enabled.
// The root path "/" is never stripped to an empty string.
func (c Config) normalize(path string) string {
	if !c.IgnoreTrailingSlash {
		return path
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return path[:len(path)-1]
	}
	return path
}
