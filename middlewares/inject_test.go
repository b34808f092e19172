package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/middlewares"
	"github.com/dmitrymomot/localekit/pkg/clientload"
)

func htmlHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	})
}

func injectChain(t *testing.T, cfg middlewares.InjectConfig, next http.Handler) http.Handler {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = testStore(t)
	}
	locale := middlewares.Locale(middlewares.LocaleConfig{Store: cfg.Store})
	return locale(middlewares.Inject(cfg)(next))
}

func extractPayload(t *testing.T, body, globalName string) middlewares.InjectPayload {
	t.Helper()
	marker := "window." + globalName + " = "
	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0, "payload script not found in %q", body)
	rest := body[start+len(marker):]
	end := strings.Index(rest, ";</script>")
	require.GreaterOrEqual(t, end, 0)

	var payload middlewares.InjectPayload
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &payload))
	return payload
}

func TestInjectMiddleware(t *testing.T) {
	t.Parallel()

	routesCfg := clientload.Config{
		Always: []string{"common"},
		Routes: []clientload.RoutePattern{
			{Pattern: "/admin/*", Namespaces: []string{"features.admin"}},
		},
		Fallback: clientload.FallbackNone,
	}

	t.Run("splices payload before closing body tag", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg},
			htmlHandler("<html><body><h1>Hi</h1></body></html>"))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		body := rec.Body.String()
		idx := strings.Index(body, "<script>window.__TRANSLATIONS__")
		require.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, strings.Index(body, "</body>"))
		assert.Equal(t, strconv.Itoa(len(body)), rec.Header().Get("Content-Length"))

		payload := extractPayload(t, body, "__TRANSLATIONS__")
		assert.Equal(t, "en", payload.Locale)
		assert.Equal(t, "Hello", payload.Messages["common.greeting"])
		assert.NotContains(t, payload.Messages, "features.home.hero")
	})

	t.Run("unmatched path with fallback none passes through", func(t *testing.T) {
		t.Parallel()
		const page = "<html><body>plain</body></html>"
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg}, htmlHandler(page))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unmapped", nil))

		assert.Equal(t, page, rec.Body.String())
	})

	t.Run("non-html responses pass through", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"ok":true}`))
			}))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		assert.Equal(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("carries fallback keys for the resolved locale", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg},
			htmlHandler("<html><body></body></html>"))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1?lang=de", nil))

		payload := extractPayload(t, rec.Body.String(), "__TRANSLATIONS__")
		assert.Equal(t, "de", payload.Locale)
		assert.Equal(t, "Hallo", payload.Messages["common.greeting"])
		assert.Equal(t, "Goodbye", payload.Messages["common.farewell"])
		assert.Equal(t, []string{"common.farewell"}, payload.FallbackKeys)
	})

	t.Run("custom global name", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg, GlobalName: "__I18N__"},
			htmlHandler("<html><body></body></html>"))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		assert.Contains(t, rec.Body.String(), "window.__I18N__ = ")
	})

	t.Run("appends when body tag is absent", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg},
			htmlHandler("<p>fragment</p>"))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		assert.True(t, strings.HasSuffix(rec.Body.String(), ";</script>"))
	})

	t.Run("works without the locale middleware", func(t *testing.T) {
		t.Parallel()
		store := testStore(t)
		srv := middlewares.Inject(middlewares.InjectConfig{Store: store, Routes: routesCfg})(
			htmlHandler("<html><body></body></html>"))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		payload := extractPayload(t, rec.Body.String(), "__TRANSLATIONS__")
		assert.Equal(t, "en", payload.Locale)
	})

	t.Run("preserves handler status code", func(t *testing.T) {
		t.Parallel()
		srv := injectChain(t, middlewares.InjectConfig{Routes: routesCfg},
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("<html><body>gone</body></html>"))
			}))

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/1", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "window.__TRANSLATIONS__")
	})
}
