package htmx

import (
	"net/http"
)

// Location performs a client-side navigation with URL update and history entry.
func Location(w http.ResponseWriter, r *http.Request, path string) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXLocation, path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusFound)
}

// LocationTarget performs a client-side navigation that updates a specific element.
func LocationTarget(w http.ResponseWriter, r *http.Request, path, target string) {
	LocationWithContext(w, r, path, AjaxContext{Target: target})
}

// LocationWithContext performs a client-side navigation with a full ajax context.
func LocationWithContext(w http.ResponseWriter, r *http.Request, path string, actx AjaxContext) {
	if IsHTMX(r) {
		data, err := actx.Encode(path)
		if err != nil {
			// Fallback to path-only if the context cannot be encoded
			w.Header().Set(HeaderHXLocation, path)
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set(HeaderHXLocation, string(data))
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusFound)
}
