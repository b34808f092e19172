package i18n

import (
	"maps"
	"sort"
)

// Overlay merges a target-locale catalog over a default-locale catalog.
// Every key of the default that the target lacks is copied into the result;
// target entries always win. The result holds the union of both key sets, so
// the overlay is purely additive. The second return value lists the keys that
// were satisfied from the default, sorted, as the canonical ordered form for
// crossing a serialization boundary; callers that need set semantics rebuild
// a set on their side.
//
// Overlaying a catalog with itself (or with a nil default) returns an
// equivalent catalog and no fallback keys.
func Overlay(target, def FlatCatalog) (FlatCatalog, []string) {
	merged := make(FlatCatalog, len(target))
	maps.Copy(merged, target)

	var fallback []string
	for key, text := range def {
		if _, ok := target[key]; ok {
			continue
		}
		merged[key] = text
		fallback = append(fallback, key)
	}
	sort.Strings(fallback)

	return merged, fallback
}
