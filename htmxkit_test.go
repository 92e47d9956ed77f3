package htmxkit_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/htmxkit"
	"github.com/dmitrymomot/htmxkit/middlewares"
	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

type routesFunc func(r htmxkit.Router)

func (f routesFunc) Routes(r htmxkit.Router) { f(r) }

func reply(s string) htmxkit.HandlerFunc {
	return func(c htmxkit.Context) error { return c.String(http.StatusOK, s) }
}

func get(t *testing.T, app *htmxkit.App, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestWhen(t *testing.T) {
	t.Parallel()

	app := htmxkit.New(htmxkit.WithHandlers(routesFunc(func(r htmxkit.Router) {
		r.GET("/contacts", htmxkit.When(htmx.IsHTMX, reply("rows"), reply("page")))
		r.GET("/only", htmxkit.When(htmx.IsHTMX, reply("rows"), nil))
		r.GET("/boosted", htmxkit.WhenHTMX(htmx.Filter{Boost: htmx.BoostOnly}, reply("boosted"), reply("other")))
	})))

	t.Run("predicate selects the handler", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "page", get(t, app, "/contacts", nil).Body.String())
		assert.Equal(t, "rows", get(t, app, "/contacts", map[string]string{"HX-Request": "true"}).Body.String())
	})

	t.Run("nil fallback answers 404", func(t *testing.T) {
		t.Parallel()

		rec := get(t, app, "/only", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("filter form", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "other", get(t, app, "/boosted", map[string]string{"HX-Request": "true"}).Body.String())
		assert.Equal(t, "boosted", get(t, app, "/boosted", map[string]string{
			"HX-Request": "true",
			"HX-Boosted": "true",
		}).Body.String())
	})
}

func TestHTMXFlow(t *testing.T) {
	t.Parallel()

	m, err := antiforgery.New("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	app := htmxkit.New(
		htmxkit.WithAntiforgeryManager(m),
		htmxkit.WithMiddleware(middlewares.Antiforgery(m)),
		htmxkit.WithHandlers(routesFunc(func(r htmxkit.Router) {
			r.GET("/token", func(c htmxkit.Context) error {
				ts, err := c.AntiforgeryTokens()
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, ts.RequestToken)
			})
			r.GET("/button/{id}", func(c htmxkit.Context) error {
				attrs, err := c.Attrs(templ.Attributes{
					"hx-route":  "contacts.delete",
					"hx-delete": "",
				})
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, attrs["hx-delete"].(string))
			})
			r.Named("contacts.delete", http.MethodDelete, "/contacts/{id}", func(c htmxkit.Context) error {
				id := htmxkit.Param[int64](c, "id")
				if id == 0 {
					return htmxkit.ErrNotFound("contact not found", htmxkit.WithErrorTarget("#flash"))
				}
				return c.HTMXResponse(func(r *htmx.Response) {
					r.TriggerEvent("contact-deleted", htmx.TimingReceive)
				})
			})
		})),
	)

	t.Run("markup points at the named route", func(t *testing.T) {
		t.Parallel()

		rec := get(t, app, "/button/7", nil)
		assert.Equal(t, "/contacts/7", rec.Body.String())
	})

	// deleteContact sends an htmx DELETE with the token issued by /token.
	deleteContact := func(t *testing.T, id int, withToken bool) *httptest.ResponseRecorder {
		t.Helper()

		issued := get(t, app, "/token", nil)
		require.Equal(t, http.StatusOK, issued.Code)

		req := httptest.NewRequest(http.MethodDelete, "/contacts/"+strconv.Itoa(id), nil)
		req.Header.Set("HX-Request", "true")
		for _, c := range issued.Result().Cookies() {
			req.AddCookie(c)
		}
		if withToken {
			req.Header.Set(antiforgery.DefaultHeaderName, issued.Body.String())
		}
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)
		return rec
	}

	t.Run("token round trip", func(t *testing.T) {
		t.Parallel()

		rec := deleteContact(t, 7, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(htmx.HeaderHXTrigger), "contact-deleted")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		t.Parallel()

		rec := deleteContact(t, 7, false)
		// htmx requests receive errors as 200 so the body is swapped.
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Invalid anti-forgery token", rec.Body.String())
		assert.Empty(t, rec.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("errors carry retarget hints", func(t *testing.T) {
		t.Parallel()

		rec := deleteContact(t, 0, true)
		assert.Equal(t, "#flash", rec.Header().Get(htmx.HeaderHXRetarget))
		assert.Equal(t, "contact not found", rec.Body.String())
	})
}

func TestHTTPErrorHelpers(t *testing.T) {
	t.Parallel()

	err := htmxkit.ErrUnprocessable("invalid", htmxkit.WithErrorSwap(htmx.SwapOuterHTML))
	wrapped := errors.Join(errors.New("context"), err)

	require.True(t, htmxkit.IsHTTPError(wrapped))
	got := htmxkit.AsHTTPError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusUnprocessableEntity, got.Code)
	assert.Equal(t, htmx.SwapOuterHTML, got.Swap)
}
