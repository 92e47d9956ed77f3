package internal

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/hxassets"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
	"github.com/dmitrymomot/htmxkit/pkg/urlgen"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
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
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(subFS))

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/") {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler, pattern})
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// A nil handler keeps DefaultErrorHandler.
//
// Example:
//
//	htmxkit.WithErrorHandler(func(c htmxkit.Context, err error) error {
//	    return c.Render(http.StatusInternalServerError, views.Error(err),
//	        htmx.WithRetarget("#flash"), htmx.WithReswap(htmx.SwapInnerHTML))
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// Extractors pull values from context (e.g., request_id, htmx_target).
//
// Example:
//
//	htmxkit.New(
//	    htmxkit.WithLogger("web", middlewares.RequestIDExtractor(), middlewares.HTMXExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.WithExtractors(extractors...)).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAntiforgery enables anti-forgery tokens signed with secret.
// It panics if the secret is rejected, since the app cannot run safely without it.
//
// Example:
//
//	htmxkit.New(
//	    htmxkit.WithAntiforgery(os.Getenv("APP_SECRET"),
//	        antiforgery.WithSecure(true),
//	    ),
//	)
func WithAntiforgery(secret string, opts ...antiforgery.Option) Option {
	return func(a *App) {
		m, err := antiforgery.New(secret, opts...)
		if err != nil {
			panic(fmt.Sprintf("antiforgery: %v", err))
		}
		a.antiforgery = m
	}
}

// WithAntiforgeryManager uses an existing token manager.
func WithAntiforgeryManager(m *antiforgery.Manager) Option {
	return func(a *App) {
		a.antiforgery = m
	}
}

// WithScriptPath serves the anti-forgery bridge script at path instead of
// the default hashed path. It panics on an empty path.
func WithScriptPath(path string) Option {
	return func(a *App) {
		assets, err := hxassets.New(hxassets.WithPath(path))
		if err != nil {
			panic(fmt.Sprintf("script path: %v", err))
		}
		a.assets = assets
	}
}

// WithURLs shares a route registry, e.g. between apps or with templates.
func WithURLs(reg *urlgen.Registry) Option {
	return func(a *App) {
		if reg != nil {
			a.urls = reg
		}
	}
}
