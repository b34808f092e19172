package i18n

import (
	"fmt"
	"io/fs"
	"sort"
)

// Bundle is an immutable set of flattened per-locale catalogs with the
// default-locale fallback overlay already applied. It is safe for concurrent
// use; build a new Bundle to pick up catalog changes.
type Bundle struct {
	catalogs      map[string]FlatCatalog
	fallbackKeys  map[string][]string
	locales       []string
	defaultLocale string
}

// NewBundle flattens every locale tree and, when defaultLocale is non-empty,
// overlays each other locale with the default so that missing entries fall
// back to it. An empty defaultLocale disables the overlay entirely: each
// catalog is used unmodified and no fallback keys are recorded.
//
// Flattening errors (malformed entries, duplicate keys) and a defaultLocale
// absent from trees abort construction; the caller's load or reload fails
// loudly rather than serving a corrupt catalog.
func NewBundle(trees map[string]Section, defaultLocale string) (*Bundle, error) {
	flats := make(map[string]FlatCatalog, len(trees))
	for locale, tree := range trees {
		if locale == "" {
			return nil, ErrEmptyLocale
		}
		flat, err := Flatten(tree)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		flats[locale] = flat
	}

	b := &Bundle{
		catalogs:      make(map[string]FlatCatalog, len(flats)),
		fallbackKeys:  make(map[string][]string, len(flats)),
		locales:       buildLocalesList(flats, defaultLocale),
		defaultLocale: defaultLocale,
	}

	if defaultLocale == "" {
		for locale, flat := range flats {
			b.catalogs[locale] = flat
		}
		return b, nil
	}

	def, ok := flats[defaultLocale]
	if !ok {
		return nil, fmt.Errorf("%w: default locale %q has no catalog", ErrUnknownLocale, defaultLocale)
	}

	for locale, flat := range flats {
		if locale == defaultLocale {
			b.catalogs[locale] = flat
			continue
		}
		merged, fallback := Overlay(flat, def)
		b.catalogs[locale] = merged
		b.fallbackKeys[locale] = fallback
	}

	return b, nil
}

// LoadBundle combines LoadFS and NewBundle.
func LoadBundle(fsys fs.FS, defaultLocale string) (*Bundle, error) {
	trees, err := LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return NewBundle(trees, defaultLocale)
}

// Catalog returns the resolved catalog for a locale together with the keys it
// satisfies via the default-locale fallback. Unknown locales resolve to the
// default locale's catalog when one is configured, and to nil otherwise.
func (b *Bundle) Catalog(locale string) (FlatCatalog, []string) {
	if catalog, ok := b.catalogs[locale]; ok {
		return catalog, b.fallbackKeys[locale]
	}
	if b.defaultLocale != "" {
		return b.catalogs[b.defaultLocale], nil
	}
	return nil, nil
}

// Locales returns the available locales, default first, the rest sorted
// alphabetically.
func (b *Bundle) Locales() []string {
	return b.locales
}

// DefaultLocale returns the configured fallback locale, which may be empty.
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

func buildLocalesList(flats map[string]FlatCatalog, defaultLocale string) []string {
	locales := make([]string, 0, len(flats))
	for locale := range flats {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)

	if _, ok := flats[defaultLocale]; ok {
		locales = append([]string{defaultLocale}, locales...)
	}
	return locales
}
