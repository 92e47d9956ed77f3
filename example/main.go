package main

import (
	"bytes"
	_ "embed"
	"net/http"
	"os"
	"time"

	"github.com/dmitrymomot/htmxkit"
	"github.com/dmitrymomot/htmxkit/example/handlers"
	"github.com/dmitrymomot/htmxkit/example/store"
	"github.com/dmitrymomot/htmxkit/example/views"
	"github.com/dmitrymomot/htmxkit/middlewares"
	"github.com/dmitrymomot/htmxkit/pkg/antiforgery"
	"github.com/dmitrymomot/htmxkit/pkg/htmx"
	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
	"github.com/dmitrymomot/htmxkit/pkg/logger"
)

//go:embed htmx.yaml
var htmxConfig []byte

const devSecret = "insecure-development-secret-0000"

func main() {
	log, err := logger.FromConfig(logger.Config{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		Sentry: logger.SentryConfig{
			DSN:         os.Getenv("SENTRY_DSN"),
			Environment: getEnv("APP_ENV", "development"),
		},
	}, logger.WithExtractors(middlewares.RequestIDExtractor(), middlewares.HTMXExtractor()))
	if err != nil {
		logger.New().Error("invalid logger config", "error", err)
		os.Exit(1)
	}

	cfg, err := hxtag.LoadConfig(bytes.NewReader(htmxConfig))
	if err != nil {
		log.Error("invalid htmx config", "error", err)
		os.Exit(1)
	}

	af, err := antiforgery.New(getEnv("ANTIFORGERY_SECRET", devSecret),
		antiforgery.WithSecure(getEnv("APP_ENV", "development") == "production"),
	)
	if err != nil {
		log.Error("invalid anti-forgery config", "error", err)
		os.Exit(1)
	}

	app := htmxkit.New(
		htmxkit.WithCustomLogger(log),
		htmxkit.WithAntiforgeryManager(af),
		htmxkit.WithMiddleware(
			middlewares.RequestID(),
			middlewares.HTMXContext(),
			middlewares.Recover(middlewares.WithRecoverTarget("#flash", htmx.SwapInnerHTML)),
			middlewares.Antiforgery(af),
		),
		htmxkit.WithHandlers(handlers.NewContacts(store.New(), cfg)),
		htmxkit.WithErrorHandler(handleError),
	)

	if err := app.Run(getEnv("ADDRESS", ":8080"),
		htmxkit.Logger(log),
		htmxkit.ShutdownTimeout(10*time.Second),
	); err != nil {
		log.Error("application error", "error", err)
		os.Exit(1)
	}
}

// handleError renders errors into the flash area for htmx requests and as a
// full page otherwise.
func handleError(c htmxkit.Context, err error) error {
	httpErr := htmxkit.AsHTTPError(err)
	if httpErr == nil {
		c.LogError("request failed", "error", err)
		httpErr = htmxkit.ErrInternal(http.StatusText(http.StatusInternalServerError), htmxkit.WithError(err))
	}

	if c.IsHTMX() {
		httpErr.ApplyHTMX(c.Response())
	}
	return c.RenderPartial(httpErr.Code,
		views.ErrorPage(httpErr.Code, httpErr.Message),
		views.Flash(httpErr.Code, httpErr.Message),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
