package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
)

// Component is the interface for renderable templates.
// This is compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context provides request/response access and helper methods.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Param(name string) string

	// Query returns the query parameter value by name.
	Query(name string) string

	// QueryDefault returns the query parameter value or a default.
	QueryDefault(name, defaultValue string) string

	// Form returns the form value by name.
	Form(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Redirect redirects to the given URL with the given status code.
	// htmx requests get HX-Redirect instead of a 3xx.
	Redirect(code int, url string) error

	// Error creates and returns an HTTPError without writing a response.
	// The error should be returned from the handler to trigger the error handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// IsHTMX returns true if the request carries the HX-Request header.
	IsHTMX() bool

	// IsBoosted returns true for requests issued by hx-boost.
	IsBoosted() bool

	// HTMX returns the typed view of the htmx request headers.
	HTMX() htmx.RequestHeaders

	// HTMXResponse configures htmx response headers for htmx requests.
	// It is a no-op for regular requests. A StopPolling status is written immediately.
	HTMXResponse(fn func(*htmx.Response)) error

	// Execute runs an action (a View, a Result, ...) against the response.
	Execute(a htmx.Action) error

	// Render renders a component with the given status code.
	// Render options only apply to htmx requests; WithStopPolling replaces code with 286.
	Render(code int, component Component, opts ...htmx.RenderOption) error

	// RenderPartial renders partial for htmx requests and fullPage otherwise.
	// Render options are ignored for regular requests.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error

	// AntiforgeryTokens issues a token set and stores the cookie token.
	// Returns antiforgery.ErrNotConfigured if WithAntiforgery was not used.
	AntiforgeryTokens() (antiforgery.TokenSet, error)

	// HTMXConfig renders the htmx-config meta tag for cfg.
	HTMXConfig(cfg *hxtag.Config) (templ.Component, error)

	// Attrs resolves URL and header attributes (hx-route, hx-header-*, ...)
	// into plain htmx attributes.
	Attrs(attrs templ.Attributes) (templ.Attributes, error)

	// URL builds the path of a named route.
	URL(name string, values map[string]string) (string, error)

	// Script returns the script tag of the anti-forgery bridge script.
	Script(debug bool) templ.Component

	// Written returns true if a response has already been written.
	Written() bool

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	// LogDebug logs a debug message with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs an info message with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs a warning message with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs an error message with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// The value can be retrieved using Get or from c.Context().Value(key).
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any

	// ResponseWriter returns the wrapped ResponseWriter for advanced usage.
	ResponseWriter() *ResponseWriter
}

// requestContext implements the Context interface.
type requestContext struct {
	request        *http.Request
	responseWriter *ResponseWriter
	app            *App
}

// newContext reuses a ResponseWriter installed by an outer middleware so
// hooks registered anywhere in the chain share one writer.
func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w, htmx.IsHTMX(r))
	}
	return &requestContext{
		request:        r,
		responseWriter: rw,
		app:            app,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.responseWriter.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.responseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	return json.NewEncoder(c.responseWriter).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.responseWriter.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.responseWriter.WriteHeader(code)
	_, err := io.WriteString(c.responseWriter, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.responseWriter.WriteHeader(code)
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.responseWriter, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) IsBoosted() bool {
	return htmx.IsBoosted(c.request)
}

func (c *requestContext) HTMX() htmx.RequestHeaders {
	return htmx.NewRequestHeaders(c.request)
}

func (c *requestContext) HTMXResponse(fn func(*htmx.Response)) error {
	return htmx.Configure(c.responseWriter, c.request, fn)
}

func (c *requestContext) Execute(a htmx.Action) error {
	return a.Execute(c.responseWriter, c.request)
}

func (c *requestContext) Render(code int, component Component, opts ...htmx.RenderOption) error {
	c.responseWriter.Header().Set("Content-Type", "text/html; charset=utf-8")

	var resp *htmx.Response
	if len(opts) > 0 && c.IsHTMX() {
		resp = htmx.Apply(c.responseWriter, opts...)
		if err := resp.Err(); err != nil {
			return err
		}
		if status := resp.Status(); status != 0 {
			code = status
		}
	}

	c.responseWriter.WriteHeader(code)

	if err := component.Render(c.request.Context(), c.responseWriter); err != nil {
		return err
	}

	if resp != nil {
		for _, oob := range resp.OOBComponents() {
			if err := oob.Render(c.request.Context(), c.responseWriter); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) AntiforgeryTokens() (antiforgery.TokenSet, error) {
	if c.app.antiforgery == nil {
		return antiforgery.TokenSet{}, antiforgery.ErrNotConfigured
	}
	return c.app.antiforgery.GetAndStoreTokens(c.responseWriter, c.request)
}

func (c *requestContext) HTMXConfig(cfg *hxtag.Config) (templ.Component, error) {
	var issuer hxtag.TokenIssuer
	if c.app.antiforgery != nil {
		issuer = c.app.antiforgery
	}
	return hxtag.Meta(c.responseWriter, c.request, cfg, issuer)
}

func (c *requestContext) Attrs(attrs templ.Attributes) (templ.Attributes, error) {
	return hxtag.URLGenerator{Resolver: c.app.urls}.Process(c.request, attrs)
}

func (c *requestContext) URL(name string, values map[string]string) (string, error) {
	return c.app.urls.Path(name, values)
}

func (c *requestContext) Script(debug bool) templ.Component {
	return c.app.assets.ScriptTag(debug)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.app.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.app.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.app.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.app.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.app.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}
