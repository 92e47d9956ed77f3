package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
)

// htmxHeadersKey is the context key for the htmx request headers.
type htmxHeadersKey struct{}

// HTMXResponse returns middleware that applies fixed htmx response headers.
//
// The headers are set right before the status line is written and only when:
//   - the request is an htmx request,
//   - the handler has not returned an error yet,
//   - the response status is below 400.
//
// Out-of-band components are not rendered by the declarative form; use
// Context.Render with htmx.WithOOB for those.
func HTMXResponse(opts ...htmx.RenderOption) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			rw := c.ResponseWriter()
			if rw == nil || !c.IsHTMX() || len(opts) == 0 {
				return next(c)
			}

			failed := false
			rw.OnBeforeWrite(func() {
				if failed || rw.Failed() || rw.Status() >= http.StatusBadRequest {
					return
				}
				resp := htmx.Apply(rw, opts...)
				if err := resp.Err(); err != nil {
					c.LogError("htmx response headers", "error", err)
					return
				}
				if code := resp.Status(); code != 0 {
					rw.OverrideStatus(code)
				}
			})

			err := next(c)
			if err != nil {
				failed = true
			}
			return err
		}
	}
}

// RequireHTMX returns middleware that only lets requests matching filter
// through. Everything else gets a 404 HTTPError.
//
//	r.Group(func(r htmxkit.Router) {
//	    r.Use(middlewares.RequireHTMX(htmx.Filter{Boost: htmx.BoostNone}))
//	    r.GET("/rows", h.rows)
//	})
func RequireHTMX(filter htmx.Filter) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if !filter.Match(c.Request()) {
				return internal.ErrNotFound(http.StatusText(http.StatusNotFound))
			}
			return next(c)
		}
	}
}

// HTMXContext returns middleware that stores the htmx request headers in the
// request context so HTMXExtractor can add them to log entries.
// Regular requests are left untouched.
func HTMXContext() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if c.IsHTMX() {
				c.Set(htmxHeadersKey{}, c.HTMX())
			}
			return next(c)
		}
	}
}

// GetHTMX returns the htmx request headers stored by HTMXContext.
func GetHTMX(ctx context.Context) (htmx.RequestHeaders, bool) {
	h, ok := ctx.Value(htmxHeadersKey{}).(htmx.RequestHeaders)
	return h, ok
}

// HTMXExtractor returns a ContextExtractor for use with WithLogger.
// It adds htmx_target, htmx_trigger and htmx_boosted to log entries of htmx
// requests. Requires the HTMXContext middleware.
func HTMXExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		h, ok := GetHTMX(ctx)
		if !ok {
			return slog.Attr{}, false
		}

		attrs := make([]slog.Attr, 0, 3)
		if v, ok := h.Target(); ok {
			attrs = append(attrs, slog.String("htmx_target", v))
		}
		if v, ok := h.Trigger(); ok {
			attrs = append(attrs, slog.String("htmx_trigger", v))
		}
		attrs = append(attrs, slog.Bool("htmx_boosted", h.Boosted()))

		// An empty group key inlines the attributes.
		return slog.Attr{Value: slog.GroupValue(attrs...)}, true
	}
}
