package urlgen

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/htmxkit/pkg/hxtag"
)

// splitArea returns the area value and a copy of values without it.
func splitArea(values map[string]string) (string, map[string]string) {
	rest := maps.Clone(values)
	if rest == nil {
		rest = map[string]string{}
	}
	area := rest[AreaKey]
	delete(rest, AreaKey)
	return area, rest
}

func build(r *http.Request, pattern string, values map[string]string, parts hxtag.URLParts) (string, bool) {
	path, err := expand(r, pattern, values)
	if err != nil {
		return "", false
	}
	return absolute(r, path, parts), true
}

func current(r *http.Request, values map[string]string, parts hxtag.URLParts) (string, bool) {
	if r == nil || r.URL == nil {
		return "", false
	}
	path := r.URL.EscapedPath()
	if q := query(values); q != "" {
		path += "?" + q
	}
	return absolute(r, path, parts), true
}

// expand fills {param} and {param:regexp} placeholders of a chi pattern.
// Missing values are taken from the request's route parameters. A trailing
// "*" takes the "*" value. Unused values are appended as a sorted query.
func expand(r *http.Request, pattern string, values map[string]string) (string, error) {
	rest := maps.Clone(values)
	param := func(name string) (string, bool) {
		if v, ok := rest[name]; ok {
			delete(rest, name)
			return v, true
		}
		if r != nil {
			if v := chi.URLParam(r, name); v != "" {
				return v, true
			}
		}
		return "", false
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{':
			end := closingBrace(pattern, i)
			if end < 0 {
				return "", fmt.Errorf("urlgen: unbalanced braces in %q", pattern)
			}
			name, _, _ := strings.Cut(pattern[i+1:end], ":")
			name = strings.TrimSpace(name)
			v, ok := param(name)
			if !ok {
				return "", fmt.Errorf("%w: %q in %q", ErrMissingParam, name, pattern)
			}
			b.WriteString(url.PathEscape(v))
			i = end
		case c == '*' && i == len(pattern)-1:
			if v, ok := param("*"); ok {
				b.WriteString(escapeWildcard(v))
			}
		default:
			b.WriteByte(c)
		}
	}

	path := b.String()
	if q := query(rest); q != "" {
		path += "?" + q
	}
	return path, nil
}

// closingBrace returns the index of the brace closing the one at start,
// accounting for nested braces inside regexp quantifiers.
func closingBrace(pattern string, start int) int {
	depth := 0
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func escapeWildcard(v string) string {
	segs := strings.Split(v, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

func query(values map[string]string) string {
	if len(values) == 0 {
		return ""
	}
	q := make(url.Values, len(values))
	for k, v := range values {
		q.Set(k, v)
	}
	// Encode sorts by key.
	return q.Encode()
}

// absolute prefixes path with scheme and host when either part is given.
func absolute(r *http.Request, path string, parts hxtag.URLParts) string {
	if parts.Protocol != "" || parts.Host != "" {
		scheme := parts.Protocol
		if scheme == "" {
			scheme = "http"
			if r != nil && r.TLS != nil {
				scheme = "https"
			}
		}
		host := parts.Host
		if host == "" && r != nil {
			host = r.Host
		}
		path = scheme + "://" + host + path
	}
	if parts.Fragment != "" {
		path += "#" + (&url.URL{Fragment: parts.Fragment}).EscapedFragment()
	}
	return path
}
