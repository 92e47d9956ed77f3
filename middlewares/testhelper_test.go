package middlewares_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
)

type testContext struct {
	response *internal.ResponseWriter
	request  *http.Request
	values   map[any]any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: internal.NewResponseWriter(w, htmx.IsHTMX(r)),
		request:  r,
		values:   make(map[any]any),
	}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(name string) string      { return "" }

func (c *testContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *testContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *testContext) Form(name string) string      { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }
func (c *testContext) JSON(code int, v any) error   { c.response.WriteHeader(code); return nil }
func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}
func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }
func (c *testContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.response, c.request, url, code)
	return nil
}
func (c *testContext) IsHTMX() bool              { return htmx.IsHTMX(c.request) }
func (c *testContext) IsBoosted() bool           { return htmx.IsBoosted(c.request) }
func (c *testContext) HTMX() htmx.RequestHeaders { return htmx.NewRequestHeaders(c.request) }
func (c *testContext) HTMXResponse(fn func(*htmx.Response)) error {
	return htmx.Configure(c.response, c.request, fn)
}
func (c *testContext) Execute(a htmx.Action) error { return a.Execute(c.response, c.request) }
func (c *testContext) Written() bool               { return c.response.Written() }
func (c *testContext) Logger() *slog.Logger        { return slog.Default() }
func (c *testContext) LogDebug(msg string, attrs ...any) {}
func (c *testContext) LogInfo(msg string, attrs ...any)  {}
func (c *testContext) LogWarn(msg string, attrs ...any)  {}
func (c *testContext) LogError(msg string, attrs ...any) {}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) Render(code int, component internal.Component, opts ...htmx.RenderOption) error {
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *testContext) RenderPartial(code int, fullPage, partial internal.Component, opts ...htmx.RenderOption) error {
	if htmx.IsHTMX(c.request) {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *testContext) AntiforgeryTokens() (antiforgery.TokenSet, error) {
	return antiforgery.TokenSet{}, antiforgery.ErrNotConfigured
}
func (c *testContext) HTMXConfig(cfg *hxtag.Config) (templ.Component, error) { return nil, nil }
func (c *testContext) Attrs(attrs templ.Attributes) (templ.Attributes, error) {
	return attrs, nil
}
func (c *testContext) URL(name string, values map[string]string) (string, error) { return "", nil }
func (c *testContext) Script(debug bool) templ.Component                         { return templ.NopComponent }

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	// Also store in request context for context extractors
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}

func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.response }
func (c *testContext) Deadline() (time.Time, bool)              { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}                    { return c.request.Context().Done() }
func (c *testContext) Err() error                               { return c.request.Context().Err() }
func (c *testContext) Value(key any) any                        { return c.request.Context().Value(key) }

// routesFunc adapts a function to internal.Handler.
type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

// serve sends req through a full App built from opts.
func serve(t *testing.T, req *http.Request, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()

	app := internal.New(opts...)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func htmxRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("HX-Request", "true")
	return req
}

// text renders a fixed string.
func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}
