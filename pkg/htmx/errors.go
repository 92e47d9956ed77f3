package htmx

import "errors"

var (
	// ErrMalformedEvents is returned when a trigger header does not hold a JSON object.
	ErrMalformedEvents = errors.New("htmx: malformed trigger events")
	// ErrNoContent is returned when a view without content is executed.
	ErrNoContent = errors.New("htmx: view has no content")
)
