package hxtag

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// URL generator attributes.
const (
	AttrAction       = "hx-action"
	AttrController   = "hx-controller"
	AttrArea         = "hx-area"
	AttrPage         = "hx-page"
	AttrPageHandler  = "hx-page-handler"
	AttrFragment     = "hx-fragment"
	AttrHost         = "hx-host"
	AttrProtocol     = "hx-protocol"
	AttrRoute        = "hx-route"
	AttrAllRouteData = "hx-all-route-data"
	AttrRoutePrefix  = "hx-route-"
)

// Methods lists the htmx verb attributes in the order they are checked.
var Methods = []string{"hx-get", "hx-post", "hx-delete", "hx-put", "hx-patch"}

// URLParts are the optional pieces that turn a path into a full URL.
type URLParts struct {
	Protocol string
	Host     string
	Fragment string
}

// URLResolver builds URLs for the three addressing strategies.
// The bool result is false when nothing matches; the attribute is then left empty.
type URLResolver interface {
	RouteURL(r *http.Request, name string, values map[string]string, parts URLParts) (string, bool)
	ActionURL(r *http.Request, controller, action string, values map[string]string, parts URLParts) (string, bool)
	PageURL(r *http.Request, page, handler string, values map[string]string, parts URLParts) (string, bool)
}

// URLGenerator turns hx-route, hx-controller/hx-action and hx-page attributes
// into the URL of an htmx verb attribute (hx-get unless another verb is set).
type URLGenerator struct {
	Resolver URLResolver
}

// Applies reports whether attrs carry any attribute handled by the generator.
func (URLGenerator) Applies(attrs templ.Attributes) bool {
	for name := range attrs {
		switch name {
		case AttrAction, AttrController, AttrArea, AttrPage, AttrPageHandler,
			AttrFragment, AttrHost, AttrProtocol, AttrRoute, AttrAllRouteData:
			return true
		}
		if strings.HasPrefix(name, AttrRoutePrefix) {
			return true
		}
	}
	return false
}

// Apply returns a copy of attrs with the generator attributes replaced by the
// resolved URL. attrs without generator attributes are returned unchanged.
func (g URLGenerator) Apply(r *http.Request, attrs templ.Attributes) (templ.Attributes, error) {
	if !g.Applies(attrs) {
		return attrs, nil
	}
	if g.Resolver == nil {
		return nil, ErrNoResolver
	}

	out := maps.Clone(attrs)
	take := func(name string) (string, bool) {
		v, ok := out[name]
		if !ok {
			return "", false
		}
		delete(out, name)
		return stringValue(v), true
	}

	route, routeLink := take(AttrRoute)
	controller, hasController := take(AttrController)
	action, hasAction := take(AttrAction)
	page, hasPage := take(AttrPage)
	handler, hasHandler := take(AttrPageHandler)
	area, hasArea := take(AttrArea)
	protocol, _ := take(AttrProtocol)
	host, _ := take(AttrHost)
	fragment, _ := take(AttrFragment)

	actionLink := hasController || hasAction
	pageLink := hasPage || hasHandler
	if (routeLink && actionLink) || (routeLink && pageLink) || (actionLink && pageLink) {
		return nil, ErrAmbiguousURL
	}

	values := map[string]string{}
	if all, ok := out[AttrAllRouteData]; ok {
		delete(out, AttrAllRouteData)
		for k, v := range stringMap(all) {
			values[k] = v
		}
	}
	for name, v := range out {
		if key, ok := strings.CutPrefix(name, AttrRoutePrefix); ok && key != "" {
			values[key] = stringValue(v)
			delete(out, name)
		}
	}
	if hasArea {
		values["area"] = area
	}

	parts := URLParts{Protocol: protocol, Host: host, Fragment: fragment}

	var url string
	switch {
	case pageLink:
		url, _ = g.Resolver.PageURL(r, page, handler, values, parts)
	case routeLink:
		url, _ = g.Resolver.RouteURL(r, route, values, parts)
	default:
		url, _ = g.Resolver.ActionURL(r, controller, action, values, parts)
	}

	method, err := definedMethod(out)
	if err != nil {
		return nil, err
	}
	out[method] = url
	return out, nil
}

func definedMethod(attrs templ.Attributes) (string, error) {
	found := ""
	for _, m := range Methods {
		if _, ok := attrs[m]; !ok {
			continue
		}
		if found != "" {
			return "", ErrAmbiguousMethod
		}
		found = m
	}
	if found == "" {
		return Methods[0], nil
	}
	return found, nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

func stringMap(v any) map[string]string {
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[k] = stringValue(val)
		}
		return out
	default:
		return nil
	}
}
