package htmx

import (
	"net/http"
	"strings"
)

// RedirectParam is the query parameter RedirectBack reads.
const RedirectParam = "redirect"

// Redirect sends the client to url with 302 Found. See RedirectWithStatus.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus redirects regular requests with status. htmx cannot
// follow a 3xx from an XHR, so htmx requests get HX-Redirect and 200 instead.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, url string, status int) {
	if !IsHTMX(r) {
		http.Redirect(w, r, url, status)
		return
	}
	NewResponseHeaders(w).SetRedirect(url)
	w.WriteHeader(http.StatusOK)
}

// RedirectBack redirects to the local path in the redirect query parameter,
// or to fallback when it is missing or points off-site.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.URL.Query().Get(RedirectParam)
	if !isLocalPath(target) {
		target = fallback
	}
	Redirect(w, r, target)
}

// isLocalPath rejects absolute and protocol-relative URLs.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
