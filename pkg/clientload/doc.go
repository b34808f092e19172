// Package clientload decides the minimal subset of a translation catalog a
// client needs for a given navigation route.
//
// Pages rarely need the whole catalog. A Config maps wildcard route patterns
// to the namespaces their pages use; matching a request path against it
// yields exactly the sub-catalog worth shipping to the browser:
//
//	cfg := clientload.Config{
//		Always: []string{"common"},
//		Routes: []clientload.RoutePattern{
//			{Pattern: "/admin/*", Namespaces: []string{"features.admin"}},
//			{Pattern: "/", Namespaces: []string{"features.home"}},
//		},
//		Fallback:            clientload.FallbackAlwaysOnly,
//		IgnoreTrailingSlash: true,
//	}
//	if err := cfg.Validate(); err != nil {
//		// bad pattern: abort startup
//	}
//
//	payload, ok := cfg.Select("/admin/42", catalog)
//	// ok: payload holds the "common" and "features.admin" entries
//
// # Matching Rules
//
// Patterns are evaluated in declaration order. An exact pattern matches only
// its own path; a pattern ending in "*" matches any path with the preceding
// literal prefix, byte-for-byte and with no segment boundary — "/user*"
// matches "/users/5", so authors write "/users/*" for segment-exact intent.
// "/*" matches every path. When several patterns match, their namespace sets
// are unioned; with WarnOnOverlap a diagnostic is logged but the result never
// changes.
//
// # Fallback Modes
//
// Unmatched paths follow the configured FallbackMode: inject nothing, inject
// only the Always set, or inject the entire catalog.
//
// Everything in this package is a pure, synchronous function over immutable
// inputs; serializing the sub-catalog into a response belongs to the caller
// (see the middlewares package).
package clientload
