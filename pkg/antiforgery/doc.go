// Package antiforgery issues and validates anti-forgery request tokens.
//
// A Manager keeps a random cookie token in an HMAC-signed, HttpOnly cookie and
// hands out request tokens bound to it. Pages embed the request token (for
// example through the htmx-config meta tag) and the bridge script sends it
// back with every non-GET htmx request.
//
//	m, err := antiforgery.New(os.Getenv("APP_SECRET"), antiforgery.WithSecure(true))
//	if err != nil {
//		return err
//	}
//
//	tokens, err := m.GetAndStoreTokens(w, r)
//	// render tokens.RequestToken into the page
//
//	if err := m.Validate(r); err != nil {
//		http.Error(w, "forbidden", http.StatusForbidden)
//	}
//
// Validate looks at the configured header first and falls back to the form
// field. Secrets shorter than 32 bytes are rejected with [ErrBadSecret].
package antiforgery
