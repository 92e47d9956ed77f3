package middlewares_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/middlewares"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

func TestHTMXResponse(t *testing.T) {
	t.Parallel()

	withHandler := func(h internal.HandlerFunc, opts ...htmx.RenderOption) []internal.Option {
		return []internal.Option{
			internal.WithMiddleware(middlewares.HTMXResponse(opts...)),
			internal.WithHandlers(routesFunc(func(r internal.Router) {
				r.GET("/", h)
			})),
		}
	}

	ok := func(c internal.Context) error { return c.String(http.StatusOK, "ok") }

	t.Run("applies headers to htmx requests", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, htmxRequest(http.MethodGet, "/"),
			withHandler(ok, htmx.WithRetarget("#main"), htmx.WithTrigger("saved"))...)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "#main", rec.Header().Get(htmx.HeaderHXRetarget))
		assert.Contains(t, rec.Header().Get(htmx.HeaderHXTrigger), "saved")
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("leaves regular requests untouched", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := serve(t, req, withHandler(ok, htmx.WithRetarget("#main"))...)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRetarget))
	})

	t.Run("skips failed handlers", func(t *testing.T) {
		t.Parallel()

		failing := func(c internal.Context) error {
			return c.Error(http.StatusUnprocessableEntity, "invalid")
		}
		rec := serve(t, htmxRequest(http.MethodGet, "/"),
			withHandler(failing, htmx.WithRetarget("#main"))...)

		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRetarget))
		assert.Equal(t, "invalid", rec.Body.String())
	})

	t.Run("skips success responses of the error handler", func(t *testing.T) {
		t.Parallel()

		failing := func(c internal.Context) error { return errors.New("boom") }
		opts := append(withHandler(failing, htmx.WithRetarget("#main")),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.String(http.StatusOK, "fallback")
			}))
		rec := serve(t, htmxRequest(http.MethodGet, "/"), opts...)

		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRetarget))
		assert.Equal(t, "fallback", rec.Body.String())
	})

	t.Run("skips error statuses", func(t *testing.T) {
		t.Parallel()

		notFound := func(c internal.Context) error { return c.String(http.StatusNotFound, "missing") }
		rec := serve(t, htmxRequest(http.MethodGet, "/"),
			withHandler(notFound, htmx.WithRetarget("#main"))...)

		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRetarget))
	})

	t.Run("stop polling overrides the status", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, htmxRequest(http.MethodGet, "/"), withHandler(ok, htmx.WithStopPolling())...)

		assert.Equal(t, htmx.StopPollingStatus, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("no options is a pass-through", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, htmxRequest(http.MethodGet, "/"), withHandler(ok)...)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRetarget))
	})
}

func TestRequireHTMX(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, filter htmx.Filter, req *http.Request) (*httptest.ResponseRecorder, bool) {
		t.Helper()

		called := false
		rec := serve(t, req,
			internal.WithHandlers(routesFunc(func(r internal.Router) {
				r.Group(func(r internal.Router) {
					r.Use(middlewares.RequireHTMX(filter))
					r.GET("/rows", func(c internal.Context) error {
						called = true
						return c.String(http.StatusOK, "rows")
					})
				})
			})),
		)
		return rec, called
	}

	t.Run("rejects regular requests", func(t *testing.T) {
		t.Parallel()

		rec, called := run(t, htmx.Filter{}, httptest.NewRequest(http.MethodGet, "/rows", nil))

		assert.False(t, called)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("accepts htmx requests", func(t *testing.T) {
		t.Parallel()

		rec, called := run(t, htmx.Filter{}, htmxRequest(http.MethodGet, "/rows"))

		assert.True(t, called)
		assert.Equal(t, "rows", rec.Body.String())
	})

	t.Run("boost filter", func(t *testing.T) {
		t.Parallel()

		_, called := run(t, htmx.Filter{Boost: htmx.BoostOnly}, htmxRequest(http.MethodGet, "/rows"))
		assert.False(t, called)

		boosted := htmxRequest(http.MethodGet, "/rows")
		boosted.Header.Set("HX-Boosted", "true")
		_, called = run(t, htmx.Filter{Boost: htmx.BoostOnly}, boosted)
		assert.True(t, called)

		boosted = htmxRequest(http.MethodGet, "/rows")
		boosted.Header.Set("HX-Boosted", "true")
		_, called = run(t, htmx.Filter{Boost: htmx.BoostNone}, boosted)
		assert.False(t, called)
	})
}

func TestHTMXExtractor(t *testing.T) {
	t.Parallel()

	capture := func(t *testing.T, req *http.Request) context.Context {
		t.Helper()

		var ctx context.Context
		c := newTestContext(httptest.NewRecorder(), req)
		err := middlewares.HTMXContext()(func(c internal.Context) error {
			ctx = c.Context()
			return nil
		})(c)
		require.NoError(t, err)
		return ctx
	}

	t.Run("adds htmx attributes", func(t *testing.T) {
		t.Parallel()

		req := htmxRequest(http.MethodGet, "/")
		req.Header.Set("HX-Target", "list")
		req.Header.Set("HX-Trigger", "load-more")
		ctx := capture(t, req)

		h, ok := middlewares.GetHTMX(ctx)
		require.True(t, ok)
		assert.True(t, h.Request())

		attr, ok := middlewares.HTMXExtractor()(ctx)
		require.True(t, ok)
		assert.Empty(t, attr.Key)
		require.Equal(t, slog.KindGroup, attr.Value.Kind())

		got := map[string]string{}
		for _, a := range attr.Value.Group() {
			got[a.Key] = a.Value.String()
		}
		assert.Equal(t, map[string]string{
			"htmx_target":  "list",
			"htmx_trigger": "load-more",
			"htmx_boosted": "false",
		}, got)
	})

	t.Run("regular requests add nothing", func(t *testing.T) {
		t.Parallel()

		ctx := capture(t, httptest.NewRequest(http.MethodGet, "/", nil))

		_, ok := middlewares.GetHTMX(ctx)
		assert.False(t, ok)
		_, ok = middlewares.HTMXExtractor()(ctx)
		assert.False(t, ok)
	})
}
