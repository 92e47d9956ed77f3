package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/dmitrymomot/htmxkit/internal"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// PanicError is what Recover returns for a panicking handler.
// Stack is nil when stack capture is disabled.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when the handler panicked with an error,
// so errors.Is(err, context.Canceled) and friends see through the recovery.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// IsPanicError reports whether err wraps a PanicError.
func IsPanicError(err error) bool {
	_, ok := AsPanicError(err)
	return ok
}

// AsPanicError finds the PanicError in err's chain.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if !errors.As(err, &pe) {
		return nil, false
	}
	return pe, true
}

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize         int       // Max stack trace size (default: 4096)
	DisablePrintStack bool      // Disable stack trace in logs
	Target            string    // HX-Retarget selector for htmx requests
	Swap              htmx.Swap // HX-Reswap style for htmx requests
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// WithRecoverTarget sends the error of a panicking htmx request into
// selector, e.g. a toast container, instead of the original target.
// An empty swap keeps the element's hx-swap.
func WithRecoverTarget(selector string, swap htmx.Swap) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.Target = selector
		cfg.Swap = swap
	}
}

// Recover returns middleware that recovers from panics.
// It logs the panic and returns a PanicError to be handled by the global ErrorHandler.
// With WithRecoverTarget, htmx requests get the PanicError wrapped in a 500
// HTTPError that carries the retarget hints; IsPanicError still matches it.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var stack []byte
				attrs := []any{"panic", r}
				if !cfg.DisablePrintStack {
					stack = make([]byte, max(cfg.StackSize, 0))
					stack = stack[:runtime.Stack(stack, false)]
					attrs = append(attrs, "stack", string(stack))
				}
				if c.IsHTMX() {
					attrs = append(attrs, "htmx", c.HTMX())
				}
				c.LogError("panic recovered", attrs...)

				pe := &PanicError{Value: r, Stack: stack}
				if cfg.Target == "" || !c.IsHTMX() {
					err = pe
					return
				}
				err = internal.ErrInternal(http.StatusText(http.StatusInternalServerError),
					internal.WithError(pe),
					internal.WithErrorTarget(cfg.Target),
					internal.WithErrorSwap(cfg.Swap),
				)
			}()

			return next(c)
		}
	}
}
