package internal

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// Target and Swap let an error be rendered into a dedicated element when
// the request came from htmx.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// Title is an optional title for the error.
	Title string

	// Detail is an optional extended description.
	Detail string

	// Target is a CSS selector sent as HX-Retarget for htmx requests.
	Target string

	// Swap is sent as HX-Reswap for htmx requests.
	Swap htmx.Swap

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// ApplyHTMX writes the Target and Swap hints as htmx response headers.
func (e *HTTPError) ApplyHTMX(w http.ResponseWriter) {
	resp := htmx.NewResponse(w)
	if e.Target != "" {
		resp.Retarget(e.Target)
	}
	if e.Swap != "" {
		resp.Reswap(e.Swap)
	}
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithTitle(title string) HTTPErrorOption {
	return func(e *HTTPError) { e.Title = title }
}

func WithDetail(detail string) HTTPErrorOption {
	return func(e *HTTPError) { e.Detail = detail }
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) { e.Err = err }
}

// WithErrorTarget renders the error into selector for htmx requests.
func WithErrorTarget(selector string) HTTPErrorOption {
	return func(e *HTTPError) { e.Target = selector }
}

// WithErrorSwap sets the swap style used for the error body on htmx requests.
func WithErrorSwap(s htmx.Swap) HTTPErrorOption {
	return func(e *HTTPError) { e.Swap = s }
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusForbidden, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

// AsHTTPError extracts the HTTPError from an error chain.
// Returns nil if there is none.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// DefaultErrorHandler writes err as plain text. HTTPErrors keep their status
// and htmx hints; anything else becomes a 500 and is logged.
func DefaultErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		c.LogError("request failed", "error", err)
		httpErr = ErrInternal(http.StatusText(http.StatusInternalServerError), WithError(err))
	} else if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed", "status", httpErr.Code, "error", err)
	}

	if c.IsHTMX() {
		httpErr.ApplyHTMX(c.Response())
	}
	return c.String(httpErr.Code, httpErr.Message)
}
