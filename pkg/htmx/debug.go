package htmx

import (
	"net/http"
	"slices"
	"strings"
)

// HeaderEntry is a single header with its values joined by a comma.
type HeaderEntry struct {
	Name  string
	Value string
}

// DebugHeaders returns the headers whose name starts with "HX-" (case-insensitive),
// sorted by name. Useful for diagnostics and request logging.
func DebugHeaders(h http.Header) []HeaderEntry {
	var entries []HeaderEntry
	for name, values := range h {
		if len(name) < 3 || !strings.EqualFold(name[:3], "hx-") {
			continue
		}
		entries = append(entries, HeaderEntry{Name: name, Value: strings.Join(values, ",")})
	}
	slices.SortFunc(entries, func(a, b HeaderEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}
