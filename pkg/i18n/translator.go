package i18n

import (
	"log/slog"
)

// TranslateFunc resolves a dotted translation key to display text. It is a
// pure function over the catalog it was built from: no two invocations
// observe different results unless the catalog itself was rebuilt.
type TranslateFunc func(key string) string

// Indicator controls the marker appended to text that was served from the
// default locale rather than the requested one.
type Indicator struct {
	// Suffix is appended verbatim to the resolved text.
	Suffix string
	// When gates the indicator per entry, e.g. "only if the text has at
	// least two words". A nil predicate applies the indicator to every
	// fallback key.
	When func(text, locale string) bool
	// InDev applies the indicator in development mode too. By default the
	// indicator is suppressed outside production.
	InDev bool
}

type translatorConfig struct {
	fallbackKeys   map[string]struct{}
	locale         string
	production     bool
	showKeysInProd bool
	indicator      *Indicator
	log            *slog.Logger
}

// TranslatorOption configures NewTranslator.
type TranslatorOption func(*translatorConfig)

// WithLocale records the locale the catalog was resolved for. It only feeds
// diagnostics and the indicator predicate; lookup is unaffected.
func WithLocale(locale string) TranslatorOption {
	return func(cfg *translatorConfig) {
		cfg.locale = locale
	}
}

// WithFallbackKeys marks the keys currently satisfied from the default
// locale, as produced by Overlay. The slice is copied into a set.
func WithFallbackKeys(keys []string) TranslatorOption {
	return func(cfg *translatorConfig) {
		cfg.fallbackKeys = make(map[string]struct{}, len(keys))
		for _, key := range keys {
			cfg.fallbackKeys[key] = struct{}{}
		}
	}
}

// WithProduction switches the missing-key policy from development behavior
// (visible marker plus warning) to production behavior (silent).
func WithProduction(production bool) TranslatorOption {
	return func(cfg *translatorConfig) {
		cfg.production = production
	}
}

// WithShowKeysInProd returns the bare key instead of an empty string for
// missing keys in production.
func WithShowKeysInProd(show bool) TranslatorOption {
	return func(cfg *translatorConfig) {
		cfg.showKeysInProd = show
	}
}

// WithFallbackIndicator enables the fallback indicator policy.
func WithFallbackIndicator(ind Indicator) TranslatorOption {
	return func(cfg *translatorConfig) {
		cfg.indicator = &ind
	}
}

// WithTranslatorLogger sets the logger that receives missing-key warnings in
// development mode. Defaults to slog.Default().
func WithTranslatorLogger(log *slog.Logger) TranslatorOption {
	return func(cfg *translatorConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}

// NewTranslator builds the lookup function for one resolved catalog.
//
// A found key returns its text, with the fallback indicator appended when the
// key is a fallback key and the indicator policy allows it. A missing key is
// never an error: in development it returns the key wrapped in brackets and
// logs one warning; in production it returns the bare key when
// WithShowKeysInProd is set and an empty string otherwise, silently.
func NewTranslator(catalog FlatCatalog, opts ...TranslatorOption) TranslateFunc {
	cfg := translatorConfig{log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(key string) string {
		if text, ok := catalog[key]; ok {
			if cfg.indicator != nil && (cfg.production || cfg.indicator.InDev) {
				if _, fb := cfg.fallbackKeys[key]; fb {
					if cfg.indicator.When == nil || cfg.indicator.When(text, cfg.locale) {
						return text + cfg.indicator.Suffix
					}
				}
			}
			return text
		}

		switch {
		case !cfg.production:
			cfg.log.Warn("missing translation key",
				slog.String("key", key),
				slog.String("locale", cfg.locale),
			)
			return "[" + key + "]"
		case cfg.showKeysInProd:
			return key
		default:
			// Silent: a missing key must never break rendering or leak
			// implementation detail to an end user.
			return ""
		}
	}
}

// Namespaced wraps a translator so that every key is prefixed with the given
// namespace before delegating. Wrapping an already namespaced translator
// composes prefixes left to right:
//
//	t := i18n.Namespaced(i18n.Namespaced(base, "features"), "admin")
//	t("title") // looks up "features.admin.title"
func Namespaced(t TranslateFunc, prefix string) TranslateFunc {
	return func(key string) string {
		return t(prefix + "." + key)
	}
}
