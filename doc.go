// Package htmxkit is a thin server-side toolkit for htmx applications built
// on chi and templ.
//
// It reads htmx request headers, composes htmx response headers, generates
// htmx attributes from named routes and protects htmx requests with
// anti-forgery tokens delivered by a small bridge script.
//
// # Quick Start
//
//	app := htmxkit.New(
//	    htmxkit.WithLogger("web", middlewares.HTMXExtractor()),
//	    htmxkit.WithAntiforgery(os.Getenv("ANTIFORGERY_SECRET")),
//	    htmxkit.WithMiddleware(middlewares.HTMXContext(), middlewares.Recover()),
//	    htmxkit.WithHandlers(handlers.NewContacts(repo)),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes. Named routes
// can be addressed from markup with hx-route attributes:
//
//	func (h *Contacts) Routes(r htmxkit.Router) {
//	    r.GET("/contacts", htmxkit.When(htmx.IsHTMX, h.rows, h.page))
//	    r.Named("contacts.delete", http.MethodDelete, "/contacts/{id}", h.delete)
//	}
//
//	func (h *Contacts) delete(c htmxkit.Context) error {
//	    if err := h.repo.Delete(c, htmxkit.Param[int64](c, "id")); err != nil {
//	        return htmxkit.ErrNotFound("contact not found", htmxkit.WithErrorTarget("#flash"))
//	    }
//	    return c.HTMXResponse(func(r *htmx.Response) {
//	        r.TriggerEvent("contact-deleted", htmx.TimingReceive)
//	    })
//	}
//
// # Responses
//
// Context.Render accepts htmx render options that only apply to htmx
// requests. Context.Execute runs a [htmx.Result] or a [htmx.View]:
//
//	return c.Execute(htmx.NewResult(view, func(r *htmx.Response) {
//	    r.PushURL("/contacts")
//	}).AsPartial())
//
// For htmx requests the response writer sends error statuses as 200 so htmx
// swaps the error body; 2xx statuses such as 286 pass through.
//
// # Markup
//
// Context.Attrs turns hx-route, hx-action, hx-page and hx-header-* attributes
// into hx-get/hx-post URLs and a single hx-headers attribute. Context.HTMXConfig
// renders the htmx-config meta tag with the anti-forgery token and
// Context.Script the bridge script tag that sends it back.
package htmxkit
