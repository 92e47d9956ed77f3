package htmx

import (
	"net/http"
	"strings"
)

// IsHTMX returns true if the request originated from HTMX.
// Only the presence of the HX-Request header is checked, not its value.
func IsHTMX(r *http.Request) bool {
	return len(r.Header.Values(HeaderHXRequest)) > 0
}

// IsBoosted returns true if the request came from an element using hx-boost.
func IsBoosted(r *http.Request) bool {
	return headerBool(r.Header, HeaderHXBoosted)
}

// headerBool is true only for a single value that is exactly "true".
func headerBool(h http.Header, key string) bool {
	v := h.Values(key)
	return len(v) == 1 && v[0] == "true"
}

// headerString joins multiple values with a comma.
func headerString(h http.Header, key string) (string, bool) {
	v := h.Values(key)
	switch len(v) {
	case 0:
		return "", false
	case 1:
		return v[0], true
	default:
		return strings.Join(v, ","), true
	}
}
