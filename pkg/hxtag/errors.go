package hxtag

import "errors"

var (
	// ErrAmbiguousURL is returned when attributes of more than one URL strategy are combined.
	ErrAmbiguousURL = errors.New("hxtag: cannot determine the URL for the element. The following attributes are mutually exclusive: hx-route, hx-controller, hx-action, hx-page, hx-page-handler")

	// ErrAmbiguousMethod is returned when more than one htmx verb attribute is set.
	ErrAmbiguousMethod = errors.New("hxtag: ambiguous htmx method. Only one of the following methods is allowed: hx-get, hx-post, hx-delete, hx-put, hx-patch")

	// ErrNoTokenIssuer is returned when the config asks for a token but no issuer is given.
	ErrNoTokenIssuer = errors.New("hxtag: antiforgery token requested without a token issuer")

	// ErrNoResolver is returned when URL attributes are used without a resolver.
	ErrNoResolver = errors.New("hxtag: url attributes require a resolver")

	// ErrInvalidSwap is returned for an unknown swap style in a loaded config.
	ErrInvalidSwap = errors.New("hxtag: invalid swap style")
)
