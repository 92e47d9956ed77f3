package hxassets

import (
	"crypto/sha1"
	_ "embed"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	//go:embed htmx-toolkit.js
	debugScript []byte

	//go:embed htmx-toolkit.min.js
	minScript []byte
)

// ErrEmptyPath is returned when the script path is empty.
var ErrEmptyPath = errors.New("hxassets: script path must not be empty")

// Hash is the lowercase hex SHA-1 of the debug script.
// It changes whenever the script changes, so it is safe to cache forever.
var Hash = func() string {
	sum := sha1.Sum(debugScript)
	return hex.EncodeToString(sum[:])
}()

// DefaultPath is where the script is served unless WithPath overrides it.
var DefaultPath = "/htmxtoolkit/" + Hash

const (
	contentType  = "text/javascript"
	cacheControl = "public,max-age=31536000"
	debugQuery   = "debug"
)

// Assets serves the anti-forgery bridge script.
type Assets struct {
	path string
}

// Option configures Assets.
type Option func(*Assets)

// WithPath sets the URL path of the script. A missing leading slash is added.
func WithPath(path string) Option {
	return func(a *Assets) {
		a.path = path
	}
}

// New creates Assets. It fails with ErrEmptyPath when WithPath was given an empty path.
func New(opts ...Option) (*Assets, error) {
	a := &Assets{path: DefaultPath}
	for _, opt := range opts {
		opt(a)
	}
	if a.path == "" {
		return nil, ErrEmptyPath
	}
	if !strings.HasPrefix(a.path, "/") {
		a.path = "/" + a.path
	}
	return a, nil
}

// Path returns the URL of the minified script.
func (a *Assets) Path() string {
	return a.path
}

// DebugPath returns the URL of the readable script.
func (a *Assets) DebugPath() string {
	return a.path + "?" + debugQuery
}

// ScriptPath returns DebugPath when debug is set, Path otherwise.
func (a *Assets) ScriptPath(debug bool) string {
	if debug {
		return a.DebugPath()
	}
	return a.path
}

// Script returns the script source.
func Script(debug bool) []byte {
	if debug {
		return debugScript
	}
	return minScript
}

// ServeHTTP writes the script. The readable variant is served when the raw
// query is exactly "debug".
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := Script(r.URL.RawQuery == debugQuery)

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Cache-Control", cacheControl)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// Mount registers the script endpoint on r for GET and HEAD.
func (a *Assets) Mount(r chi.Router) {
	r.Get(a.path, a.ServeHTTP)
	r.Head(a.path, a.ServeHTTP)
}
