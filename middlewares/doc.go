// Package middlewares provides HTTP middleware for htmxkit applications.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing and debugging.
// It checks incoming headers for existing IDs or generates a UUID.
// Use RequestIDExtractor with WithLogger to add request_id to every log entry.
//
// # Recover
//
// Recover catches panics and converts them to a typed PanicError for the
// global ErrorHandler. WithRecoverTarget retargets the error of htmx requests:
//
//	middlewares.Recover(middlewares.WithRecoverTarget("#toast", htmx.SwapBeforeEnd))
//
// # htmx
//
// HTMXResponse applies fixed htmx response headers to successful htmx
// responses. RequireHTMX restricts a route group to htmx requests:
//
//	r.Group(func(r htmxkit.Router) {
//	    r.Use(middlewares.RequireHTMX(htmx.Filter{}))
//	    r.Use(middlewares.HTMXResponse(htmx.WithTriggerAfterSettle("rows-loaded")))
//	    r.GET("/rows", h.rows)
//	})
//
// HTMXContext together with HTMXExtractor adds htmx_target, htmx_trigger and
// htmx_boosted to the log entries of htmx requests.
//
// # Anti-forgery
//
// Antiforgery rejects unsafe requests without a valid request token with a
// 403 HTTPError. Pair it with htmxkit.WithAntiforgery and the bridge script
// so htmx requests carry the token header.
//
// # Complete Example
//
//	af, err := antiforgery.New(secret)
//	if err != nil {
//	    return err
//	}
//
//	app := htmxkit.New(
//	    htmxkit.WithAntiforgeryManager(af),
//	    htmxkit.WithLogger("web",
//	        middlewares.RequestIDExtractor(),
//	        middlewares.HTMXExtractor(),
//	    ),
//	    htmxkit.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.HTMXContext(),
//	        middlewares.Recover(),
//	        middlewares.Antiforgery(af),
//	    ),
//	)
package middlewares
