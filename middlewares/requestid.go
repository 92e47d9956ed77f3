package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders lists the inbound headers RequestID trusts, in order.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// DefaultRequestIDMaxLength bounds inbound IDs. Longer ones are replaced.
const DefaultRequestIDMaxLength = 128

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Headers        []string
	ResponseHeader string
	MaxLength      int
	Generator      func() string
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the inbound headers to check.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Headers = headers
	}
}

// WithRequestIDGenerator replaces uuid.NewString.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Generator = gen
	}
}

// WithRequestIDResponseHeader sets the header echoing the ID back.
// htmx exposes it to the page through the htmx:afterRequest event's xhr.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

// WithRequestIDMaxLength sets the longest inbound ID accepted as is.
func WithRequestIDMaxLength(n int) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.MaxLength = n
	}
}

// RequestID returns middleware that tags every request with an ID.
// An inbound ID is reused when it is short and printable ASCII, so traces
// started upstream survive; anything else gets a fresh one.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Headers:        DefaultRequestIDHeaders,
		ResponseHeader: "X-Request-ID",
		MaxLength:      DefaultRequestIDMaxLength,
		Generator:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id := cfg.inbound(c)
			if id == "" {
				id = cfg.Generator()
			}

			c.Set(requestIDKey{}, id)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, id)
			}
			return next(c)
		}
	}
}

func (cfg *RequestIDConfig) inbound(c internal.Context) string {
	for _, h := range cfg.Headers {
		v := c.Header(h)
		if v == "" {
			continue
		}
		if cfg.valid(v) {
			return v
		}
		return ""
	}
	return ""
}

func (cfg *RequestIDConfig) valid(id string) bool {
	if cfg.MaxLength > 0 && len(id) > cfg.MaxLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID returns the ID set by RequestID, or "".
func GetRequestID(c internal.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds request_id to log entries. Pair it with
// HTMXExtractor to tell apart the swaps issued from one page.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, _ := ctx.Value(requestIDKey{}).(string)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
