package internal

import "strings"

// ExtractorSource extracts a value from the request context.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(Context) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func nonEmpty(v string) (string, bool) {
	return v, v != ""
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Header(name))
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Query(name))
	}
}

// FromParam returns a source that reads from a URL parameter.
func FromParam(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Param(name))
	}
}

// FromForm returns a source that reads from a form field.
func FromForm(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.Form(name))
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		ck, err := c.Request().Cookie(name)
		if err != nil {
			return "", false
		}
		return nonEmpty(ck.Value)
	}
}

// FromHTMXPrompt returns a source that reads the sanitized HX-Prompt answer.
func FromHTMXPrompt() ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(c.HTMX().PromptText())
	}
}

// FromHTMXTriggerName returns a source that reads HX-Trigger-Name, the name
// attribute of the element that issued the request.
func FromHTMXTriggerName() ExtractorSource {
	return func(c Context) (string, bool) {
		return c.HTMX().TriggerName()
	}
}

// FromHTMXHeader returns a source that reads an HX-* request header.
// Repeated values are joined with commas.
func FromHTMXHeader(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		return nonEmpty(strings.Join(c.Request().Header.Values(name), ","))
	}
}
