package clientload

import (
	"fmt"
	"log/slog"
	"strings"
)

// Wildcard is the greedy match-all marker. It is only valid as the final
// character of a route pattern.
const Wildcard = "*"

// SkipInjection is the in-band marker recognized by Extract: a namespace list
// containing it yields an empty sub-catalog, letting a route opt out of
// client injection entirely. It is distinct from an empty namespace list,
// which means "no filtering".
const SkipInjection = "__SKIP_INJECTION__"

// RoutePattern pairs a path pattern with the namespaces a matching page
// needs. A pattern is either an exact path or a prefix ending in Wildcard.
//
// The wildcard matches the remainder byte-for-byte with no segment boundary:
// "/user*" matches "/users/5". Include the trailing slash ("/users/*") when
// segment-exact matching is wanted.
type RoutePattern struct {
	Pattern    string
	Namespaces []string
}

// FallbackMode governs what a request path that matches no route pattern
// receives.
type FallbackMode int

const (
	// FallbackNone injects nothing for unmatched paths.
	FallbackNone FallbackMode = iota
	// FallbackAlwaysOnly injects only the Always namespaces for unmatched
	// paths, or nothing when that set is empty.
	FallbackAlwaysOnly
	// FallbackAll injects the entire catalog for unmatched paths.
	FallbackAll
)

// Config decides which translation namespaces are exposed to client-side
// code per navigation route. It is immutable once constructed; validate it at
// startup with Validate.
type Config struct {
	// Always lists namespaces loaded unconditionally whenever anything is
	// injected.
	Always []string
	// Routes is evaluated in declaration order.
	Routes []RoutePattern
	// Fallback applies when no route pattern matches the request path.
	Fallback FallbackMode
	// IgnoreTrailingSlash strips one trailing "/" from the request path and
	// from each pattern's literal portion before comparing. The root path
	// "/" is never stripped.
	IgnoreTrailingSlash bool
	// WarnOnOverlap logs a diagnostic when more than one pattern matches a
	// path. The selected result is unaffected.
	WarnOnOverlap bool
	// Logger receives overlap diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate checks every route pattern. The wildcard marker may appear only as
// the final character; anything else fails with ErrInvalidRoutePattern. Call
// this at configuration time so bad patterns abort startup, not requests.
func (c Config) Validate() error {
	for _, route := range c.Routes {
		if i := strings.Index(route.Pattern, Wildcard); i >= 0 && i != len(route.Pattern)-1 {
			return fmt.Errorf("%w: %q: wildcard must be the final character", ErrInvalidRoutePattern, route.Pattern)
		}
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
