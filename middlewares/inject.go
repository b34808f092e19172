package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/clientload"
	"github.com/dmitrymomot/localekit/pkg/i18n"
)

// DefaultGlobalName is the browser global the injected payload is assigned to.
const DefaultGlobalName = "__TRANSLATIONS__"

// InjectConfig configures the Inject middleware.
type InjectConfig struct {
	// Store supplies the catalog bundle when the Locale middleware did not
	// already put a snapshot into the request context.
	Store *i18n.Store
	// Routes decides which namespaces each request path receives.
	Routes clientload.Config
	// GlobalName overrides DefaultGlobalName.
	GlobalName string
}

// InjectPayload is the serialization envelope shipped to the browser.
// FallbackKeys is an ordered sequence at this boundary; client code wanting
// set semantics rebuilds a set on its side.
type InjectPayload struct {
	Locale       string           `json:"locale"`
	Messages     i18n.FlatCatalog `json:"messages"`
	FallbackKeys []string         `json:"fallbackKeys,omitempty"`
}

// Inject returns middleware that rewrites HTML responses to carry the
// route-scoped translation payload. It buffers the response, selects the
// sub-catalog for the request path, and splices a script tag assigning the
// payload to a well-known global right before the closing body tag.
// Non-HTML responses and paths that resolve to "inject nothing" pass through
// untouched.
func Inject(cfg InjectConfig) func(http.Handler) http.Handler {
	if cfg.GlobalName == "" {
		cfg.GlobalName = DefaultGlobalName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := &bufferedResponse{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(buf, r)

			body := buf.body.Bytes()
			if script, ok := buildScript(cfg, r); ok && isHTML(buf.Header().Get("Content-Type"), body) {
				body = spliceBeforeBodyEnd(body, script)
			}

			buf.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.WriteHeader(buf.status)
			w.Write(body) //nolint:errcheck // nothing to do about a failed client write
		})
	}
}

func buildScript(cfg InjectConfig, r *http.Request) ([]byte, bool) {
	bundle := bundleFromContext(r.Context())
	if bundle == nil {
		if cfg.Store == nil {
			return nil, false
		}
		bundle = cfg.Store.Snapshot()
	}

	locale := GetLocale(r.Context())
	if locale == "" {
		locale = bundle.DefaultLocale()
	}

	catalog, fallbackKeys := bundle.Catalog(locale)
	selected, ok := cfg.Routes.Select(r.URL.Path, catalog)
	if !ok {
		return nil, false
	}

	payload := InjectPayload{
		Locale:   locale,
		Messages: selected,
	}
	for _, key := range fallbackKeys {
		if _, ok := selected[key]; ok {
			payload.FallbackKeys = append(payload.FallbackKeys, key)
		}
	}

	// json.Marshal escapes "<" and ">", so catalog text cannot break out of
	// the script element.
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, false
	}

	var script bytes.Buffer
	script.WriteString("<script>window.")
	script.WriteString(cfg.GlobalName)
	script.WriteString(" = ")
	script.Write(data)
	script.WriteString(";</script>")
	return script.Bytes(), true
}

func isHTML(contentType string, body []byte) bool {
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	return strings.HasPrefix(contentType, "text/html")
}

func spliceBeforeBodyEnd(body, script []byte) []byte {
	idx := bytes.LastIndex(body, []byte("</body>"))
	if idx < 0 {
		return append(body, script...)
	}

	out := make([]byte, 0, len(body)+len(script))
	out = append(out, body[:idx]...)
	out = append(out, script...)
	out = append(out, body[idx:]...)
	return out
}

// bufferedResponse captures the handler's output so the payload can be
// spliced in and Content-Length fixed up before anything reaches the wire.
type bufferedResponse struct {
	http.ResponseWriter
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.status = status
	b.wroteHeader = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}
