package clientload

import (
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

// Extract returns the sub-catalog whose keys belong to the given namespaces.
// A key belongs to a namespace when it equals the namespace exactly or starts
// with the namespace followed by a dot, so namespace "common" selects
// "common" and "common.save" but never "commonExtra".
//
// Two empty-looking inputs carry opposite meanings and must not be conflated:
// an empty namespace list means "no filtering" and returns a copy of the
// whole catalog, while a list containing SkipInjection returns an empty
// sub-catalog.
func Extract(catalog i18n.FlatCatalog, namespaces []string) i18n.FlatCatalog {
	if slices.Contains(namespaces, SkipInjection) {
		return i18n.FlatCatalog{}
	}
	if len(namespaces) == 0 {
		return maps.Clone(catalog)
	}

	out := make(i18n.FlatCatalog)
	for key, text := range catalog {
		for _, ns := range namespaces {
			if key == ns || strings.HasPrefix(key, ns+".") {
				out[key] = text
				break
			}
		}
	}
	return out
}
