package antiforgery

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/htmxkit/pkg/cookie"
)

// Errors.
var (
	ErrBadSecret     = errors.New("antiforgery: secret must be 32+ bytes")
	ErrMissingCookie = errors.New("antiforgery: cookie token missing")
	ErrMissingToken  = errors.New("antiforgery: request token missing")
	ErrInvalidToken  = errors.New("antiforgery: invalid token")
	ErrNotConfigured = errors.New("antiforgery: not configured")
)

// Defaults used when no option overrides them.
const (
	DefaultCookieName    = "__htmxkit_af"
	DefaultHeaderName    = "RequestVerificationToken"
	DefaultFormFieldName = "__RequestVerificationToken"
)

const (
	cookieTokenSize = 32
	nonceSize       = 16
)

// TokenSet is what a page needs to submit a protected request.
// HeaderName is empty when tokens are only accepted as form fields.
type TokenSet struct {
	HeaderName    string
	FormFieldName string
	RequestToken  string
}

// Manager issues and validates anti-forgery tokens.
//
// A random cookie token is kept in a signed cookie. Each request token
// is a fresh nonce plus an HMAC over the cookie token and that nonce, so many
// request tokens can be valid for one cookie.
type Manager struct {
	secret     []byte
	cookieName string
	headerName string
	formField  string
	path       string
	domain     string
	secure     bool
	sameSite   http.SameSite
	maxAge     int
	cookies    *cookie.Manager
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a Manager. The secret must be at least 32 bytes.
func New(secret string, opts ...Option) (*Manager, error) {
	if len(secret) < 32 {
		return nil, ErrBadSecret
	}
	m := &Manager{
		secret:     []byte(secret),
		cookieName: DefaultCookieName,
		headerName: DefaultHeaderName,
		formField:  DefaultFormFieldName,
		path:       "/",
		sameSite:   http.SameSiteStrictMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.cookies = m.newCookies()
	return m, nil
}

// WithCookieName sets the name of the cookie holding the cookie token.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

// WithHeaderName sets the request header carrying the token.
// An empty name disables the header, tokens then travel as form fields.
func WithHeaderName(name string) Option {
	return func(m *Manager) {
		m.headerName = name
	}
}

// WithFormFieldName sets the form field carrying the token.
func WithFormFieldName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.formField = name
		}
	}
}

// WithCookiePath sets the cookie path.
func WithCookiePath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// WithMaxAge sets the cookie lifetime in seconds. Zero makes it a session cookie.
func WithMaxAge(seconds int) Option {
	return func(m *Manager) {
		m.maxAge = seconds
	}
}

// HeaderName returns the configured request header name.
func (m *Manager) HeaderName() string { return m.headerName }

// FormFieldName returns the configured form field name.
func (m *Manager) FormFieldName() string { return m.formField }

// GetAndStoreTokens returns a fresh request token. When the request has no
// valid cookie token a new one is generated and stored in a cookie on w.
// The new cookie is also added to r so later calls in the same request reuse it.
func (m *Manager) GetAndStoreTokens(w http.ResponseWriter, r *http.Request) (TokenSet, error) {
	cookieToken, err := m.cookieToken(r)
	if err != nil {
		cookieToken, err = randomBytes(cookieTokenSize)
		if err != nil {
			return TokenSet{}, err
		}
		if err := m.storeCookieToken(w, r, cookieToken); err != nil {
			return TokenSet{}, err
		}
	}

	nonce, err := randomBytes(nonceSize)
	if err != nil {
		return TokenSet{}, err
	}

	token := append(nonce, m.mac(cookieToken, nonce)...)
	return TokenSet{
		HeaderName:    m.headerName,
		FormFieldName: m.formField,
		RequestToken:  base64.RawURLEncoding.EncodeToString(token),
	}, nil
}

// Validate checks the request token of r against its cookie token.
// The header is consulted first, then the form field.
func (m *Manager) Validate(r *http.Request) error {
	cookieToken, err := m.cookieToken(r)
	if err != nil {
		return err
	}

	raw := ""
	if m.headerName != "" {
		raw = r.Header.Get(m.headerName)
	}
	if raw == "" {
		raw = r.FormValue(m.formField)
	}
	if raw == "" {
		return ErrMissingToken
	}

	token, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil || len(token) != nonceSize+sha256.Size {
		return ErrInvalidToken
	}

	nonce, sig := token[:nonceSize], token[nonceSize:]
	if !hmac.Equal(sig, m.mac(cookieToken, nonce)) {
		return ErrInvalidToken
	}
	return nil
}

func (m *Manager) mac(cookieToken, nonce []byte) []byte {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte("request"))
	h.Write(cookieToken)
	h.Write(nonce)
	return h.Sum(nil)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("antiforgery: generate token: %w", err)
	}
	return b, nil
}
