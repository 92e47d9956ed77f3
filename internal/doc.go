// Package internal holds the app, router and request context behind the
// htmxkit facade. Import "github.com/dmitrymomot/htmxkit" instead, which
// re-exports the public API.
//
// # Context
//
// Context embeds context.Context and adds htmx-aware helpers:
//
//	func (h *TodoHandler) delete(c htmxkit.Context) error {
//	    if err := h.repo.Delete(c, c.Param("id")); err != nil {
//	        return c.Error(http.StatusNotFound, "todo not found",
//	            htmxkit.WithErrorTarget("#flash"))
//	    }
//	    return c.HTMXResponse(func(r *htmx.Response) {
//	        r.TriggerEvent("todo-deleted", htmx.TimingReceive)
//	    })
//	}
//
// Render and RenderPartial accept htmx.RenderOption values that only take
// effect for htmx requests. Execute runs htmx.Action values such as
// *htmx.View and *htmx.Result.
//
// # Status codes
//
// The response writer sends statuses outside 2xx as 200 when the request
// came from htmx, so error bodies are swapped instead of dropped. 2xx codes
// pass unchanged, including 286 which stops htmx polling.
//
// # Markup helpers
//
// AntiforgeryTokens, HTMXConfig, Attrs, URL and Script connect templates
// with the anti-forgery manager, the named route registry and the bridge
// script mounted by the app.
package internal
