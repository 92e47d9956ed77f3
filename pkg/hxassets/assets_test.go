package hxassets_test

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/htmxkit/pkg/hxassets"
)

func TestHash(t *testing.T) {
	t.Parallel()

	sum := sha1.Sum(hxassets.Script(true))
	assert.Equal(t, hex.EncodeToString(sum[:]), hxassets.Hash)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), hxassets.Hash)
	assert.Equal(t, "/htmxtoolkit/"+hxassets.Hash, hxassets.DefaultPath)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default path", func(t *testing.T) {
		t.Parallel()

		a, err := hxassets.New()
		require.NoError(t, err)
		assert.Equal(t, hxassets.DefaultPath, a.Path())
		assert.Equal(t, hxassets.DefaultPath+"?debug", a.DebugPath())
	})

	t.Run("leading slash is added", func(t *testing.T) {
		t.Parallel()

		a, err := hxassets.New(hxassets.WithPath("assets/toolkit.js"))
		require.NoError(t, err)
		assert.Equal(t, "/assets/toolkit.js", a.Path())
		assert.Equal(t, "/assets/toolkit.js?debug", a.ScriptPath(true))
		assert.Equal(t, "/assets/toolkit.js", a.ScriptPath(false))
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := hxassets.New(hxassets.WithPath(""))
		assert.ErrorIs(t, err, hxassets.ErrEmptyPath)
	})
}

func TestServeHTTP(t *testing.T) {
	t.Parallel()

	a, err := hxassets.New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		debug  bool
	}{
		{"minified", a.Path(), false},
		{"debug", a.DebugPath(), true},
		{"other query is minified", a.Path() + "?debug=1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/javascript", rec.Header().Get("Content-Type"))
			assert.Equal(t, "public,max-age=31536000", rec.Header().Get("Cache-Control"))
			assert.Equal(t, hxassets.Script(tt.debug), rec.Body.Bytes())
		})
	}
}

func TestMount(t *testing.T) {
	t.Parallel()

	a, err := hxassets.New(hxassets.WithPath("/js/toolkit"))
	require.NoError(t, err)

	r := chi.NewRouter()
	a.Mount(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/toolkit?debug", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "htmx:configRequest")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/js/toolkit", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestScripts(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{true, false} {
		src := string(hxassets.Script(debug))
		assert.Contains(t, src, "document.body._r_htmx")
		assert.Contains(t, src, "htmx:afterOnLoad")
		assert.Contains(t, src, "htmx:configRequest")
		assert.Contains(t, src, "meta[name='htmx-config']")
		assert.Contains(t, src, "/^get$/i")
	}
}

func TestComponents(t *testing.T) {
	t.Parallel()

	a, err := hxassets.New(hxassets.WithPath("/js/tk"))
	require.NoError(t, err)

	t.Run("script tag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, a.ScriptTag(true).Render(context.Background(), &buf))
		assert.Equal(t, `<script src="/js/tk?debug"></script>`, buf.String())
	})

	t.Run("script tag with nonce", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ctx := templ.WithNonce(context.Background(), "abc")
		require.NoError(t, a.ScriptTag(false).Render(ctx, &buf))
		assert.Equal(t, `<script src="/js/tk" nonce="abc"></script>`, buf.String())
	})

	t.Run("inline script", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, hxassets.InlineScript(false).Render(context.Background(), &buf))
		assert.Equal(t, "<script>"+string(hxassets.Script(false))+"</script>", buf.String())
	})
}
