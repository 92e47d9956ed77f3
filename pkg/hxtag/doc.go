// Package hxtag builds htmx markup for templ components.
//
// Config describes htmx.config and renders it as the htmx-config meta tag,
// optionally embedding an anti-forgery token set:
//
//	cfg := &hxtag.Config{IncludeAntiforgeryToken: true}
//	meta, err := hxtag.Meta(w, r, cfg, tokens)
//
// URLGenerator rewrites attribute sets that address an endpoint by route name,
// controller/action or page into a concrete hx-get (or hx-post, hx-put, ...)
// URL, and HeadersAttr collapses hx-header-* attributes into hx-headers:
//
//	attrs, err := gen.Process(r, templ.Attributes{
//		"hx-route":        "todo.delete",
//		"hx-route-id":     "42",
//		"hx-delete":       "",
//		"hx-header-X-Key": "v",
//	})
//	// <button { attrs... }>
package hxtag
