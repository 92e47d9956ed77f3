package antiforgery

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/htmxkit/pkg/cookie"
)

func (m *Manager) newCookies() *cookie.Manager {
	return cookie.New(
		cookie.WithSecret(string(m.secret)),
		cookie.WithPath(m.path),
		cookie.WithDomain(m.domain),
		cookie.WithSecure(m.secure),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(m.sameSite),
	)
}

// cookieToken reads and verifies the cookie token.
func (m *Manager) cookieToken(r *http.Request) ([]byte, error) {
	v, err := m.cookies.GetSigned(r, m.cookieName)
	switch {
	case errors.Is(err, cookie.ErrNotFound):
		return nil, ErrMissingCookie
	case errors.Is(err, cookie.ErrBadSig):
		return nil, ErrInvalidToken
	case err != nil:
		return nil, err
	}
	if len(v) != cookieTokenSize {
		return nil, ErrInvalidToken
	}
	return []byte(v), nil
}

// storeCookieToken writes token to w and adds it to r so later calls in the
// same request see it.
func (m *Manager) storeCookieToken(w http.ResponseWriter, r *http.Request, token []byte) error {
	v, err := m.cookies.SetSigned(w, m.cookieName, string(token), m.maxAge)
	if err != nil {
		return err
	}
	r.AddCookie(&http.Cookie{Name: m.cookieName, Value: v})
	return nil
}
