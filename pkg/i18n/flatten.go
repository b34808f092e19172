package i18n

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Flatten converts a nested catalog into its flat dotted-key form. Section
// segments are normalized with NormalizeSegment; Verbatim keys pass through
// unchanged. Duplicates are detected here rather than at lookup time: two
// source paths that produce the same flattened key fail with ErrDuplicateKey
// naming both paths, since a silent overwrite would corrupt the catalog.
func Flatten(root Node) (FlatCatalog, error) {
	out := make(FlatCatalog)
	sources := make(map[string]string)
	if err := flatten(root, "", "", out, sources); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(n Node, key, source string, out FlatCatalog, sources map[string]string) error {
	switch node := n.(type) {
	case nil:
		return nil
	case Text:
		if prev, ok := sources[key]; ok {
			return fmt.Errorf("%w: %q produced by both %q and %q", ErrDuplicateKey, key, prev, source)
		}
		sources[key] = source
		out[key] = string(node)
		return nil
	case Section:
		for seg, child := range node {
			if err := flatten(child, joinKey(key, NormalizeSegment(seg)), joinKey(source, seg), out, sources); err != nil {
				return err
			}
		}
		return nil
	case Verbatim:
		for seg, child := range node {
			if err := flatten(child, joinKey(key, seg), joinKey(source, seg), out, sources); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: key %q holds unsupported node %T", ErrMalformedCatalogEntry, key, n)
	}
}

func joinKey(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

// NormalizeSegment converts a hyphenated name segment to camel case:
// "admin-panel" becomes "adminPanel". The first word is lower-cased, each
// subsequent word is capitalized and concatenated. Segments without hyphens
// are returned unchanged.
func NormalizeSegment(seg string) string {
	if !strings.Contains(seg, "-") {
		return seg
	}

	var b strings.Builder
	b.Grow(len(seg))

	first := true
	for _, word := range strings.Split(seg, "-") {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(word))
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}

	return b.String()
}
