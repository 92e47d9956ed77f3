package htmxkit

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
	"github.com/dmitrymomot/htmxkit/pkg/urlgen"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and htmx helpers.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// HTTPError is an error with a status code and htmx retarget hints.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor tries its sources in order and returns the first value found.
	Extractor = internal.Extractor

	// ExtractorSource pulls a single value out of a request.
	ExtractorSource = internal.ExtractorSource

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// ResponseWriter wraps http.ResponseWriter with hooks and htmx status handling.
	ResponseWriter = internal.ResponseWriter
)

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := htmxkit.New(
//	    htmxkit.WithAntiforgery(os.Getenv("ANTIFORGERY_SECRET")),
//	    htmxkit.WithHandlers(
//	        handlers.NewContacts(repo),
//	    ),
//	)
//
//	err := app.Run(":8080", htmxkit.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// When dispatches to h if pred matches the request and to otherwise if not.
// A nil otherwise answers 404.
//
// Example:
//
//	r.GET("/contacts", htmxkit.When(htmx.IsHTMX, h.rows, h.page))
func When(pred func(*http.Request) bool, h, otherwise HandlerFunc) HandlerFunc {
	return func(c Context) error {
		if pred(c.Request()) {
			return h(c)
		}
		if otherwise == nil {
			return internal.ErrNotFound(http.StatusText(http.StatusNotFound))
		}
		return otherwise(c)
	}
}

// WhenHTMX dispatches htmx requests matching filter to h and everything else to otherwise.
func WhenHTMX(filter htmx.Filter, h, otherwise HandlerFunc) HandlerFunc {
	return When(filter.Match, h, otherwise)
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory listings are disabled.
//
// Example:
//
//	//go:embed public
//	var assets embed.FS
//
//	htmxkit.New(
//	    htmxkit.WithStaticFiles("/static/", assets, "public"),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
//
// Example:
//
//	htmxkit.New(
//	    htmxkit.WithLogger("web", middlewares.RequestIDExtractor(), middlewares.HTMXExtractor()),
//	)
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithAntiforgery enables anti-forgery tokens signed with secret.
// The secret must be at least 32 bytes; New panics otherwise.
func WithAntiforgery(secret string, opts ...antiforgery.Option) Option {
	return internal.WithAntiforgery(secret, opts...)
}

// WithAntiforgeryManager uses an existing anti-forgery manager.
// Share the manager with middlewares.Antiforgery.
func WithAntiforgeryManager(m *antiforgery.Manager) Option {
	return internal.WithAntiforgeryManager(m)
}

// WithScriptPath serves the anti-forgery bridge script at path instead of
// the content-hashed default.
func WithScriptPath(path string) Option {
	return internal.WithScriptPath(path)
}

// WithURLs uses reg for named routes and markup URL generation.
func WithURLs(reg *urlgen.Registry) Option {
	return internal.WithURLs(reg)
}

// Run options

// Logger sets the server logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
// Cancelling it shuts the server down.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Errors

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithErrorTarget renders the error of an htmx request into selector.
func WithErrorTarget(selector string) HTTPErrorOption {
	return internal.WithErrorTarget(selector)
}

// WithErrorSwap sets the swap style used for the error of an htmx request.
func WithErrorSwap(s htmx.Swap) HTTPErrorOption {
	return internal.WithErrorSwap(s)
}

// WithError attaches the underlying error for logging.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// ErrBadRequest creates a 400 HTTPError.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrForbidden creates a 403 HTTPError.
func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrForbidden(message, opts...)
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrUnprocessable creates a 422 HTTPError.
func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrUnprocessable(message, opts...)
}

// ErrInternal creates a 500 HTTPError.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// AsHTTPError extracts the HTTPError from an error chain.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// DefaultErrorHandler writes err as plain text with its status code.
func DefaultErrorHandler(c Context, err error) error {
	return internal.DefaultErrorHandler(c, err)
}

// Context helpers

// Scalar lists the types URL, query and prompt values convert to.
type Scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or type assertion fails.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// Param returns a URL parameter converted to T.
//
// Example:
//
//	id := htmxkit.Param[int64](c, "id")
func Param[T Scalar](c Context, name string) T {
	return internal.Param[T](c, name)
}

// Query returns a query parameter converted to T.
func Query[T Scalar](c Context, name string) T {
	return internal.Query[T](c, name)
}

// QueryDefault returns a query parameter converted to T, or defaultValue.
func QueryDefault[T Scalar](c Context, name string, defaultValue T) T {
	return internal.QueryDefault(c, name, defaultValue)
}

// Prompt returns the sanitized HX-Prompt value converted to T, or defaultValue.
//
// Example:
//
//	name := htmxkit.Prompt(c, "untitled")
func Prompt[T Scalar](c Context, defaultValue T) T {
	return internal.Prompt(c, defaultValue)
}

// Extractors

// NewExtractor creates an extractor that tries sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource { return internal.FromHeader(name) }

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource { return internal.FromQuery(name) }

// FromParam reads a URL parameter.
func FromParam(name string) ExtractorSource { return internal.FromParam(name) }

// FromForm reads a form value.
func FromForm(name string) ExtractorSource { return internal.FromForm(name) }

// FromCookie reads a cookie value.
func FromCookie(name string) ExtractorSource { return internal.FromCookie(name) }

// FromHTMXPrompt reads the sanitized HX-Prompt header.
func FromHTMXPrompt() ExtractorSource { return internal.FromHTMXPrompt() }

// FromHTMXTriggerName reads the HX-Trigger-Name header.
func FromHTMXTriggerName() ExtractorSource { return internal.FromHTMXTriggerName() }

// FromHTMXHeader reads an htmx header, joining repeated values with ",".
func FromHTMXHeader(name string) ExtractorSource { return internal.FromHTMXHeader(name) }
