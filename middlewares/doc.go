// Package middlewares wires the i18n and clientload packages into standard
// net/http middleware.
//
// Locale resolves the request locale (query parameter, cookie,
// Accept-Language, default), takes one catalog snapshot for the lifetime of
// the request, and stores a request-scoped translator in the context:
//
//	mux.Use(middlewares.Locale(middlewares.LocaleConfig{
//		Store:      store,
//		Production: true,
//	}))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		t := middlewares.GetTranslator(r.Context())
//		fmt.Fprint(w, t("common.greeting"))
//	}
//
// Inject rewrites HTML responses to carry the route-scoped translation
// payload for client-side code, assigned to a well-known browser global in a
// script tag before the closing body tag:
//
//	mux.Use(middlewares.Inject(middlewares.InjectConfig{
//		Store: store,
//		Routes: clientload.Config{
//			Always: []string{"common"},
//			Routes: []clientload.RoutePattern{
//				{Pattern: "/admin/*", Namespaces: []string{"features.admin"}},
//			},
//		},
//	}))
//
// Both middlewares are plain func(http.Handler) http.Handler and compose with
// any router.
package middlewares
