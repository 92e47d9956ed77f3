// Package cookie writes plain and HMAC-signed cookies that share one set of
// attributes.
//
//	m := cookie.New(
//		cookie.WithSecret(os.Getenv("APP_SECRET")),
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteStrictMode),
//	)
//
//	if _, err := m.SetSigned(w, "af", token, 0); err != nil {
//		return err
//	}
//	token, err := m.GetSigned(r, "af")
//	if errors.Is(err, cookie.ErrBadSig) {
//		// tampered, or signed for another cookie name
//	}
//
// The antiforgery package keeps its cookie token in a signed cookie.
// Signed operations return [ErrNoSecret] unless a secret of at least
// [MinSecretSize] bytes was given.
package cookie
