package i18n

import "fmt"

// FlatCatalog maps dotted translation keys (e.g. "common.actions.save") to
// display text. Keys are case-sensitive and unique within one catalog.
// A FlatCatalog is built once per locale and treated as immutable afterwards;
// every function in this package that returns one returns a fresh map.
type FlatCatalog map[string]string

// Node is one node of a nested, not-yet-flattened translation catalog.
// It is a closed union of Text, Section, and Verbatim.
type Node interface {
	node()
}

// Text is a leaf translation value.
type Text string

// Section maps name-derived segments (directory or file names) to child
// nodes. Section keys use the hyphenated naming convention of the source
// tree and are normalized to camel case when flattened.
type Section map[string]Node

// Verbatim maps document-internal keys to child nodes. Unlike Section keys,
// Verbatim keys are emitted into flattened catalog keys exactly as written.
type Verbatim map[string]Node

func (Text) node()     {}
func (Section) node()  {}
func (Verbatim) node() {}

// FromValue converts a decoded JSON or YAML document into a Verbatim tree.
// Only string leaves and string-keyed objects are representable; any other
// value fails with ErrMalformedCatalogEntry naming the offending key path.
func FromValue(v any) (Node, error) {
	return fromValue(v, "")
}

func fromValue(v any, path string) (Node, error) {
	switch val := v.(type) {
	case string:
		return Text(val), nil
	case map[string]any:
		out := make(Verbatim, len(val))
		for key, child := range val {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			node, err := fromValue(child, childPath)
			if err != nil {
				return nil, err
			}
			out[key] = node
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: key %q holds %T, want string or object", ErrMalformedCatalogEntry, path, v)
	}
}
