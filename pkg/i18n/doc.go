// Package i18n resolves human-readable text for multi-locale applications.
//
// The package turns nested per-locale translation catalogs into flat
// dotted-key lookup tables, overlays a default locale over incomplete ones,
// and builds pure lookup functions with explicit development and production
// failure policies. All values are immutable after construction, making them
// safe for concurrent use.
//
// # Catalog Model
//
// A nested catalog is a closed union of three node kinds: Text leaves,
// Sections whose keys come from file or directory names, and Verbatim
// subtrees whose keys come from inside a decoded document. Flatten joins the
// segment path of every leaf into a dotted key, normalizing Section segments
// from the hyphenated file-naming convention to camel case and passing
// Verbatim keys through unchanged:
//
//	tree := i18n.Section{
//		"features": i18n.Section{
//			"admin-panel": i18n.Verbatim{
//				"title": i18n.Text("Administration"),
//			},
//		},
//	}
//
//	flat, err := i18n.Flatten(tree)
//	// flat["features.adminPanel.title"] == "Administration"
//
// Malformed entries and duplicate keys fail at flatten time, never at lookup
// time.
//
// # Loading From Files
//
// LoadFS reads a directory tree whose top level is one directory per locale:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	bundle, err := i18n.LoadBundle(subFS, "en")
//
// File convention: {locale}/{path...}/{name}.json (or .yaml/.yml).
//
// # Fallback Overlay
//
// A Bundle built with a default locale overlays every other locale with it:
// entries missing from the target locale are served from the default and
// reported as fallback keys, so callers can render an indicator next to
// not-yet-translated text.
//
// # Translators
//
// NewTranslator closes over one resolved catalog and returns a pure
// key-to-text function:
//
//	t := i18n.NewTranslator(catalog,
//		i18n.WithLocale("de"),
//		i18n.WithFallbackKeys(fallbackKeys),
//		i18n.WithProduction(true),
//	)
//
//	t("common.actions.save") // "Speichern"
//
// A missing key is a normal runtime case, not an error: development mode
// returns the bracketed key and logs a warning, production mode returns an
// empty string (or the bare key with WithShowKeysInProd) without logging.
//
// Namespaced scopes a translator to a key prefix, composing under nesting:
//
//	admin := i18n.Namespaced(t, "features.admin")
//	admin("title") // looks up "features.admin.title"
//
// # Hot Reload
//
// Store holds the current Bundle behind an atomic pointer. Request handlers
// take one Snapshot for the lifetime of the request; Reload swaps in a fresh
// bundle without disturbing in-flight requests and keeps the previous one on
// failure.
package i18n
