package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
)

// AntiforgeryConfig configures the anti-forgery middleware.
type AntiforgeryConfig struct {
	Skip    func(c internal.Context) bool // Skip validation when it returns true
	Message string                        // Message of the 403 error
}

// AntiforgeryOption configures AntiforgeryConfig.
type AntiforgeryOption func(*AntiforgeryConfig)

// WithAntiforgerySkip sets a predicate that bypasses validation.
func WithAntiforgerySkip(fn func(c internal.Context) bool) AntiforgeryOption {
	return func(cfg *AntiforgeryConfig) {
		cfg.Skip = fn
	}
}

// WithAntiforgeryMessage sets the message of the rejection error.
func WithAntiforgeryMessage(msg string) AntiforgeryOption {
	return func(cfg *AntiforgeryConfig) {
		cfg.Message = msg
	}
}

// Antiforgery returns middleware that validates the request token of unsafe
// requests (POST, PUT, PATCH, DELETE) against the cookie token.
// A missing or invalid token yields a 403 HTTPError wrapping the cause.
//
// The bridge script sends the token in the configured header for every htmx
// request, so handlers rendered with HTMXConfig need no extra form field.
func Antiforgery(m *antiforgery.Manager, opts ...AntiforgeryOption) internal.Middleware {
	if m == nil {
		panic(antiforgery.ErrNotConfigured)
	}

	cfg := &AntiforgeryConfig{
		Message: "Invalid anti-forgery token",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if isSafeMethod(c.Request().Method) || (cfg.Skip != nil && cfg.Skip(c)) {
				return next(c)
			}
			if err := m.Validate(c.Request()); err != nil {
				c.LogWarn("anti-forgery validation failed", "error", err)
				return internal.ErrForbidden(cfg.Message, internal.WithError(err))
			}
			return next(c)
		}
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
