package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("flattens nested sections into dotted keys", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"common": i18n.Verbatim{
				"greeting": i18n.Text("Hello"),
				"actions": i18n.Verbatim{
					"save": i18n.Text("Save"),
				},
			},
		}

		flat, err := i18n.Flatten(tree)
		require.NoError(t, err)
		require.Equal(t, i18n.FlatCatalog{
			"common.greeting":     "Hello",
			"common.actions.save": "Save",
		}, flat)
	})

	t.Run("normalizes hyphenated section segments", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"features": i18n.Section{
				"admin-panel": i18n.Verbatim{
					"title": i18n.Text("Administration"),
				},
			},
		}

		flat, err := i18n.Flatten(tree)
		require.NoError(t, err)
		require.Equal(t, "Administration", flat["features.adminPanel.title"])
	})

	t.Run("passes verbatim keys through unchanged", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"common": i18n.Verbatim{
				"some-key": i18n.Text("kept as written"),
			},
		}

		flat, err := i18n.Flatten(tree)
		require.NoError(t, err)
		require.Equal(t, "kept as written", flat["common.some-key"])
		assert.NotContains(t, flat, "common.someKey")
	})

	t.Run("empty tree yields empty catalog", func(t *testing.T) {
		t.Parallel()
		flat, err := i18n.Flatten(i18n.Section{})
		require.NoError(t, err)
		require.Empty(t, flat)
	})

	t.Run("detects colliding normalized segments", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"admin-panel": i18n.Verbatim{"title": i18n.Text("A")},
			"adminPanel":  i18n.Verbatim{"title": i18n.Text("B")},
		}

		_, err := i18n.Flatten(tree)
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrDuplicateKey)
		assert.Contains(t, err.Error(), "adminPanel.title")
	})

	t.Run("duplicate error names both source paths", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"save-all": i18n.Text("A"),
			"saveAll":  i18n.Text("B"),
		}

		_, err := i18n.Flatten(tree)
		require.ErrorIs(t, err, i18n.ErrDuplicateKey)
		assert.Contains(t, err.Error(), "save-all")
		assert.Contains(t, err.Error(), "saveAll")
	})

	t.Run("round-trips through renesting", func(t *testing.T) {
		t.Parallel()
		tree := i18n.Section{
			"common": i18n.Verbatim{
				"greeting": i18n.Text("Hello"),
				"actions": i18n.Verbatim{
					"save":   i18n.Text("Save"),
					"cancel": i18n.Text("Cancel"),
				},
			},
			"features": i18n.Section{
				"admin": i18n.Verbatim{"title": i18n.Text("Admin")},
			},
		}

		flat, err := i18n.Flatten(tree)
		require.NoError(t, err)

		reflat, err := i18n.Flatten(renest(flat))
		require.NoError(t, err)
		require.Equal(t, flat, reflat)
	})
}

// renest splits every flattened key on "." and rebuilds a verbatim tree.
func renest(flat i18n.FlatCatalog) i18n.Node {
	root := i18n.Verbatim{}
	for key, text := range flat {
		segments := strings.Split(key, ".")
		cur := root
		for _, seg := range segments[:len(segments)-1] {
			child, ok := cur[seg].(i18n.Verbatim)
			if !ok {
				child = i18n.Verbatim{}
				cur[seg] = child
			}
			cur = child
		}
		cur[segments[len(segments)-1]] = i18n.Text(text)
	}
	return root
}

func TestNormalizeSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"common", "common"},
		{"admin-panel", "adminPanel"},
		{"user-profile-settings", "userProfileSettings"},
		{"Admin-Panel", "adminPanel"},
		{"already-camelCase", "alreadyCamelCase"},
		{"camelCase", "camelCase"},
		{"--double", "double"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.NormalizeSegment(tt.in))
		})
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	t.Run("converts strings and nested objects", func(t *testing.T) {
		t.Parallel()
		node, err := i18n.FromValue(map[string]any{
			"greeting": "Hello",
			"actions":  map[string]any{"save": "Save"},
		})
		require.NoError(t, err)

		flat, err := i18n.Flatten(node)
		require.NoError(t, err)
		require.Equal(t, i18n.FlatCatalog{
			"greeting":     "Hello",
			"actions.save": "Save",
		}, flat)
	})

	t.Run("rejects non-string leaves", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.FromValue(map[string]any{
			"common": map[string]any{"count": 42},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, i18n.ErrMalformedCatalogEntry)
		assert.Contains(t, err.Error(), "common.count")
	})

	t.Run("rejects nil leaves", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.FromValue(map[string]any{"oops": nil})
		require.ErrorIs(t, err, i18n.ErrMalformedCatalogEntry)
	})
}
