package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

func hxRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	return req
}

func TestRedirectWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        *http.Request
		status     int
		wantCode   int
		wantHeader string
		wantValue  string
	}{
		{"htmx gets HX-Redirect and 200", hxRequest(http.MethodPost, "/"), http.StatusSeeOther, http.StatusOK, "HX-Redirect", "/contacts"},
		{"regular keeps its status", httptest.NewRequest(http.MethodPost, "/", nil), http.StatusSeeOther, http.StatusSeeOther, "Location", "/contacts"},
		{"regular permanent", httptest.NewRequest(http.MethodGet, "/", nil), http.StatusMovedPermanently, http.StatusMovedPermanently, "Location", "/contacts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			htmx.RedirectWithStatus(rec, tt.req, "/contacts", tt.status)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantValue, rec.Header().Get(tt.wantHeader))
		})
	}

	t.Run("htmx redirect never sets Location", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, hxRequest(http.MethodGet, "/"), "/search?q=a&page=1#results")

		assert.Equal(t, "/search?q=a&page=1#results", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("empty url leaves HX-Redirect unset", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, hxRequest(http.MethodGet, "/"), "")

		_, ok := rec.Header()["Hx-Redirect"]
		assert.False(t, ok)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("presence of HX-Request is enough", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(htmx.HeaderHXRequest, "false")
		rec := httptest.NewRecorder()
		htmx.Redirect(rec, req, "/login")

		assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
	})
}

func TestRedirectBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"local path", "?redirect=/dashboard", "/dashboard"},
		{"encoded path with query", "?redirect=%2Fsearch%3Fq%3Dtest", "/search?q=test"},
		{"first value wins", "?redirect=/first&redirect=/second", "/first"},
		{"missing", "", "/fallback"},
		{"empty", "?redirect=", "/fallback"},
		{"absolute url", "?redirect=https://evil.example", "/fallback"},
		{"protocol relative", "?redirect=//evil.example", "/fallback"},
		{"backslash trick", "?redirect=/%5Cevil.example", "/fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			htmx.RedirectBack(rec, hxRequest(http.MethodPost, "/contacts"+tt.query), "/fallback")
			assert.Equal(t, tt.want, rec.Header().Get("HX-Redirect"))
		})
	}

	t.Run("regular request gets 302", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.RedirectBack(rec, httptest.NewRequest(http.MethodGet, "/?redirect=/profile", nil), "/")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/profile", rec.Header().Get("Location"))
	})
}
