package urlgen

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
)

var (
	ErrDuplicate    = errors.New("urlgen: duplicate registration")
	ErrEmptyPattern = errors.New("urlgen: empty pattern")
	ErrUnknownRoute = errors.New("urlgen: unknown route")
	ErrMissingParam = errors.New("urlgen: missing route parameter")
)

// AreaKey is the route value that selects the area of actions and pages.
const AreaKey = "area"

// HandlerKey is the query parameter carrying a page handler name.
const HandlerKey = "handler"

type actionKey struct{ area, controller, action string }

type pageKey struct{ area, page string }

// Registry maps route names, actions and pages to chi patterns.
// It is safe for concurrent use and implements hxtag.URLResolver.
type Registry struct {
	mu      sync.RWMutex
	routes  map[string]string
	actions map[actionKey]string
	pages   map[pageKey]string
}

var _ hxtag.URLResolver = (*Registry)(nil)

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		routes:  make(map[string]string),
		actions: make(map[actionKey]string),
		pages:   make(map[pageKey]string),
	}
}

// Route registers a named pattern.
func (g *Registry) Route(name, pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.routes[name]; ok {
		return fmt.Errorf("%w: route %q", ErrDuplicate, name)
	}
	g.routes[name] = pattern
	return nil
}

// Action registers the pattern of a controller action. area may be empty.
func (g *Registry) Action(area, controller, action, pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	k := actionKey{area, controller, action}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.actions[k]; ok {
		return fmt.Errorf("%w: action %s/%s/%s", ErrDuplicate, area, controller, action)
	}
	g.actions[k] = pattern
	return nil
}

// Page registers the pattern of a page. area may be empty.
func (g *Registry) Page(area, page, pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	k := pageKey{area, page}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.pages[k]; ok {
		return fmt.Errorf("%w: page %s%s", ErrDuplicate, area, page)
	}
	g.pages[k] = pattern
	return nil
}

// Path builds the path of a named route. Values not consumed by the pattern
// become the query string.
func (g *Registry) Path(name string, values map[string]string) (string, error) {
	g.mu.RLock()
	pattern, ok := g.routes[name]
	g.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return expand(nil, pattern, values)
}

// RouteURL implements hxtag.URLResolver.
func (g *Registry) RouteURL(r *http.Request, name string, values map[string]string, parts hxtag.URLParts) (string, bool) {
	g.mu.RLock()
	pattern, ok := g.routes[name]
	g.mu.RUnlock()
	if !ok {
		return "", false
	}
	return build(r, pattern, values, parts)
}

// ActionURL implements hxtag.URLResolver. Empty controller and action
// address the current request path.
func (g *Registry) ActionURL(r *http.Request, controller, action string, values map[string]string, parts hxtag.URLParts) (string, bool) {
	area, rest := splitArea(values)
	if controller == "" && action == "" {
		return current(r, rest, parts)
	}
	g.mu.RLock()
	pattern, ok := g.actions[actionKey{area, controller, action}]
	g.mu.RUnlock()
	if !ok {
		return "", false
	}
	return build(r, pattern, rest, parts)
}

// PageURL implements hxtag.URLResolver. An empty page addresses the current
// request path; a handler is passed as the "handler" query parameter.
func (g *Registry) PageURL(r *http.Request, page, handler string, values map[string]string, parts hxtag.URLParts) (string, bool) {
	area, rest := splitArea(values)
	if handler != "" {
		rest[HandlerKey] = handler
	}
	if page == "" {
		return current(r, rest, parts)
	}
	g.mu.RLock()
	pattern, ok := g.pages[pageKey{area, page}]
	g.mu.RUnlock()
	if !ok {
		return "", false
	}
	return build(r, pattern, rest, parts)
}
