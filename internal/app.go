package internal

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/hxassets"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
	"github.com/dmitrymomot/htmxkit/pkg/urlgen"
)

// App wires routing, htmx helpers and their collaborators together.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	logger                  *slog.Logger
	antiforgery             *antiforgery.Manager
	assets                  *hxassets.Assets
	urls                    *urlgen.Registry
	middlewares             []Middleware
	handlers                []Handler
	staticRoutes            []staticRoute
}

// staticRoute represents a static file handler mount point.
type staticRoute struct {
	handler http.Handler
	pattern string
}

// New creates a new application with the given options.
//
// Example:
//
//	app := htmxkit.New(
//	    htmxkit.WithAntiforgery(os.Getenv("APP_SECRET")),
//	    htmxkit.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    htmxkit.WithHandlers(handlers.NewTodos(repo)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router:       chi.NewRouter(),
		logger:       logger.NewNope(),
		urls:         urlgen.New(),
		errorHandler: DefaultErrorHandler,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.assets == nil {
		assets, err := hxassets.New()
		if err != nil {
			panic(err)
		}
		a.assets = assets
	}

	a.setupRoutes()
	return a
}

// Router returns the underlying chi.Router.
func (a *App) Router() chi.Router {
	return a.router
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// URLs returns the registry of named routes.
func (a *App) URLs() *urlgen.Registry {
	return a.urls
}

// Assets returns the anti-forgery bridge script assets.
func (a *App) Assets() *hxassets.Assets {
	return a.assets
}

// Antiforgery returns the token manager, or nil when not configured.
func (a *App) Antiforgery() *antiforgery.Manager {
	return a.antiforgery
}

// setupRoutes configures the router with middleware and handlers.
func (a *App) setupRoutes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}

	a.assets.Mount(a.router)

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError hands err to the error handler unless the response is already written.
func (a *App) handleError(c Context, err error) {
	if rw := c.ResponseWriter(); rw != nil {
		rw.MarkFailed()
	}
	if c.Written() {
		a.logger.WarnContext(c.Context(), "error after response was written", "error", err)
		return
	}
	if herr := a.errorHandler(c, err); herr != nil {
		a.logger.ErrorContext(c.Context(), "error handler failed", "error", herr, "cause", err)
	}
}
