package htmx_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"missing header", nil, false},
		{"true", []string{"true"}, true},
		{"false still counts", []string{"false"}, true},
		{"empty value still counts", []string{""}, true},
		{"arbitrary value", []string{"1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for _, v := range tt.values {
				req.Header.Add("HX-Request", v)
			}

			assert.Equal(t, tt.want, htmx.IsHTMX(req))
		})
	}
}

func TestIsBoosted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"missing header", nil, false},
		{"true", []string{"true"}, true},
		{"uppercase is rejected", []string{"True"}, false},
		{"false", []string{"false"}, false},
		{"two values", []string{"true", "true"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for _, v := range tt.values {
				req.Header.Add("HX-Boosted", v)
			}

			assert.Equal(t, tt.want, htmx.IsBoosted(req))
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()

	t.Run("reads string headers with presence", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "contacts")
		req.Header.Set("HX-Trigger", "btn")
		req.Header.Set("HX-Trigger-Name", "save")
		req.Header.Set("HX-Current-URL", "https://example.com/page")

		h := htmx.NewRequestHeaders(req)

		target, ok := h.Target()
		assert.True(t, ok)
		assert.Equal(t, "contacts", target)

		trigger, ok := h.Trigger()
		assert.True(t, ok)
		assert.Equal(t, "btn", trigger)

		name, ok := h.TriggerName()
		assert.True(t, ok)
		assert.Equal(t, "save", name)

		url, ok := h.CurrentURL()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/page", url)

		_, ok = h.Prompt()
		assert.False(t, ok)

		assert.True(t, h.Request())
		assert.False(t, h.Boosted())
		assert.False(t, h.HistoryRestoreRequest())
	})

	t.Run("empty value is present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Target", "")

		v, ok := htmx.NewRequestHeaders(req).Target()
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("multiple values are comma joined", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Add("HX-Target", "a")
		req.Header.Add("HX-Target", "b")

		v, _ := htmx.NewRequestHeaders(req).Target()
		assert.Equal(t, "a,b", v)
	})

	t.Run("history restore request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-History-Restore-Request", "true")

		assert.True(t, htmx.NewRequestHeaders(req).HistoryRestoreRequest())
	})

	t.Run("prompt text strips markup", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Prompt", `<b>yes</b><script>alert(1)</script>`)

		h := htmx.NewRequestHeaders(req)
		raw, ok := h.Prompt()
		assert.True(t, ok)
		assert.Contains(t, raw, "<script>")
		assert.Equal(t, "yes", h.PromptText())
	})

	t.Run("log value includes only htmx headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Target", "list")
		req.Header.Set("Accept", "text/html")

		v := htmx.NewRequestHeaders(req).LogValue()
		assert.Equal(t, slog.KindGroup, v.Kind())
		attrs := v.Group()
		assert.Len(t, attrs, 1)
		assert.Equal(t, "Hx-Target", attrs[0].Key)
		assert.Equal(t, "list", attrs[0].Value.String())
	})
}

func TestDebugHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("HX-Trigger", "btn")
	h.Set("HX-Boosted", "true")
	h.Set("Content-Type", "text/html")
	h.Add("HX-Target", "a")
	h.Add("HX-Target", "b")

	entries := htmx.DebugHeaders(h)

	assert.Equal(t, []htmx.HeaderEntry{
		{Name: "Hx-Boosted", Value: "true"},
		{Name: "Hx-Target", Value: "a,b"},
		{Name: "Hx-Trigger", Value: "btn"},
	}, entries)
}
