package clientload

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

// Selection is the three-way outcome of route-scoped namespace resolution:
// inject everything, inject a specific namespace set, or inject nothing. It
// replaces in-band marker strings with an explicit variant.
type Selection struct {
	namespaces []string
	kind       selectionKind
}

type selectionKind int

const (
	selectNone selectionKind = iota
	selectAll
	selectNamespaces
)

// NoInjection means no translations are shipped to the client.
func NoInjection() Selection {
	return Selection{kind: selectNone}
}

// AllNamespaces means the entire catalog is shipped unfiltered.
func AllNamespaces() Selection {
	return Selection{kind: selectAll}
}

// Namespaces selects a specific namespace set, deduplicated in first-seen
// order. A SkipInjection marker anywhere in the list collapses the whole
// selection to NoInjection; an empty list collapses to AllNamespaces,
// mirroring the Extract sentinel semantics.
func Namespaces(names ...string) Selection {
	if slices.Contains(names, SkipInjection) {
		return NoInjection()
	}
	if len(names) == 0 {
		return AllNamespaces()
	}

	deduped := make([]string, 0, len(names))
	for _, name := range names {
		if !slices.Contains(deduped, name) {
			deduped = append(deduped, name)
		}
	}
	return Selection{kind: selectNamespaces, namespaces: deduped}
}

// None reports whether the selection means "inject nothing".
func (s Selection) None() bool { return s.kind == selectNone }

// All reports whether the selection means "inject the entire catalog".
func (s Selection) All() bool { return s.kind == selectAll }

// Names returns the selected namespaces in first-seen order. It is empty for
// the All and None variants.
func (s Selection) Names() []string { return slices.Clone(s.namespaces) }

// Selection resolves which namespaces the given request path should receive.
// When at least one route pattern matches, the result is the union of the
// Always set and every matched pattern's namespaces, deduplicated in
// first-seen order. When nothing matches, the Fallback mode decides.
func (c Config) Selection(path string) Selection {
	matched, _ := c.Match(path)

	if len(matched) > 0 {
		names := slices.Clone(c.Always)
		for _, route := range matched {
			names = append(names, route.Namespaces...)
		}
		return Namespaces(names...)
	}

	switch c.Fallback {
	case FallbackAll:
		return AllNamespaces()
	case FallbackAlwaysOnly:
		if len(c.Always) == 0 {
			return NoInjection()
		}
		return Namespaces(c.Always...)
	default:
		return NoInjection()
	}
}

// Select composes Selection and Extract into the sub-catalog to serialize to
// the client for one request path. The second result is false when nothing
// should be injected. Select is a pure function of its inputs: it performs no
// I/O and makes no assumption about how the result is embedded in a response.
func (c Config) Select(path string, catalog i18n.FlatCatalog) (i18n.FlatCatalog, bool) {
	sel := c.Selection(path)
	switch {
	case sel.None():
		return nil, false
	case sel.All():
		return maps.Clone(catalog), true
	default:
		return Extract(catalog, sel.namespaces), true
	}
}
