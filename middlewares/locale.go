package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

type localeCtxKey struct{}

type translatorCtxKey struct{}

type bundleCtxKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	// Store supplies the catalog bundle; one snapshot is taken per request.
	Store *i18n.Store
	// QueryParam overrides the locale via the URL, e.g. "?lang=de".
	// Defaults to "lang".
	QueryParam string
	// CookieName carries a sticky locale choice. Defaults to "lang".
	CookieName string
	// Production selects the translator's production missing-key policy.
	Production bool
	// ShowKeysInProd returns bare keys instead of empty strings for missing
	// keys in production.
	ShowKeysInProd bool
	// Indicator, when set, marks text served via the default-locale fallback.
	Indicator *i18n.Indicator
	// Logger receives translator warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Locale returns middleware that resolves the request locale, binds a
// request-scoped translator to a single bundle snapshot, and stores the
// locale, translator, and snapshot in the request context.
//
// Resolution order: query parameter, cookie, Accept-Language negotiation,
// bundle default. Query and cookie values are honored only when the bundle
// actually has that locale.
func Locale(cfg LocaleConfig) func(http.Handler) http.Handler {
	if cfg.Store == nil {
		panic("middlewares: locale store is not provided")
	}
	if cfg.QueryParam == "" {
		cfg.QueryParam = "lang"
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "lang"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bundle := cfg.Store.Snapshot()
			locale := resolveLocale(r, cfg, bundle.Locales())

			catalog, fallbackKeys := bundle.Catalog(locale)
			opts := []i18n.TranslatorOption{
				i18n.WithLocale(locale),
				i18n.WithFallbackKeys(fallbackKeys),
				i18n.WithProduction(cfg.Production),
				i18n.WithShowKeysInProd(cfg.ShowKeysInProd),
				i18n.WithTranslatorLogger(cfg.Logger),
			}
			if cfg.Indicator != nil {
				opts = append(opts, i18n.WithFallbackIndicator(*cfg.Indicator))
			}
			translator := i18n.NewTranslator(catalog, opts...)

			ctx := context.WithValue(r.Context(), localeCtxKey{}, locale)
			ctx = context.WithValue(ctx, translatorCtxKey{}, translator)
			ctx = context.WithValue(ctx, bundleCtxKey{}, bundle)

			w.Header().Set("Content-Language", locale)
			w.Header().Add("Vary", "Accept-Language")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLocale(r *http.Request, cfg LocaleConfig, available []string) string {
	if locale := r.URL.Query().Get(cfg.QueryParam); locale != "" && slices.Contains(available, locale) {
		return locale
	}
	if cookie, err := r.Cookie(cfg.CookieName); err == nil && slices.Contains(available, cookie.Value) {
		return cookie.Value
	}
	return i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"), available)
}

// GetTranslator extracts the request-scoped translator from the context.
// Returns nil if the Locale middleware is not used.
func GetTranslator(ctx context.Context) i18n.TranslateFunc {
	if t, ok := ctx.Value(translatorCtxKey{}).(i18n.TranslateFunc); ok {
		return t
	}
	return nil
}

// GetLocale extracts the resolved locale from the context. Returns an empty
// string if the Locale middleware is not used.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeCtxKey{}).(string); ok {
		return locale
	}
	return ""
}

func bundleFromContext(ctx context.Context) *i18n.Bundle {
	if bundle, ok := ctx.Value(bundleCtxKey{}).(*i18n.Bundle); ok {
		return bundle
	}
	return nil
}
