// Package urlgen generates URLs from named chi patterns.
//
// A Registry records route names, controller actions and pages against chi
// patterns and implements hxtag.URLResolver, so hx-route, hx-controller and
// hx-page attributes resolve to real paths:
//
//	reg := urlgen.New()
//	_ = reg.Route("todo.show", "/todos/{id:[0-9]+}")
//	path, _ := reg.Path("todo.show", map[string]string{"id": "7", "tab": "notes"})
//	// /todos/7?tab=notes
//
// Placeholders without a value are filled from the current request's chi
// route parameters.
package urlgen
