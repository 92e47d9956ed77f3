package htmx

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var promptPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// RequestHeaders is a read-only view over the htmx headers of a request.
// It borrows the request's header map and must not outlive the request.
type RequestHeaders struct {
	h http.Header
}

// NewRequestHeaders returns the htmx header view of r.
func NewRequestHeaders(r *http.Request) RequestHeaders {
	return RequestHeaders{h: r.Header}
}

// Boosted reports whether the request was made by an element using hx-boost.
func (h RequestHeaders) Boosted() bool {
	return headerBool(h.h, HeaderHXBoosted)
}

// CurrentURL returns the current URL of the browser.
func (h RequestHeaders) CurrentURL() (string, bool) {
	return headerString(h.h, HeaderHXCurrentURL)
}

// HistoryRestoreRequest reports whether the request restores history after
// a miss in the local history cache.
func (h RequestHeaders) HistoryRestoreRequest() bool {
	return headerBool(h.h, HeaderHXHistoryRestoreRequest)
}

// Prompt returns the user response to an hx-prompt.
func (h RequestHeaders) Prompt() (string, bool) {
	return headerString(h.h, HeaderHXPrompt)
}

// PromptText returns the hx-prompt response with all markup stripped.
func (h RequestHeaders) PromptText() string {
	v, ok := h.Prompt()
	if !ok {
		return ""
	}
	return promptPolicy().Sanitize(v)
}

// Request reports whether HX-Request is exactly "true".
// Use IsHTMX to detect htmx requests; it only checks presence.
func (h RequestHeaders) Request() bool {
	return headerBool(h.h, HeaderHXRequest)
}

// Target returns the id of the target element.
func (h RequestHeaders) Target() (string, bool) {
	return headerString(h.h, HeaderHXTarget)
}

// TriggerName returns the name of the triggering element.
func (h RequestHeaders) TriggerName() (string, bool) {
	return headerString(h.h, HeaderHXTriggerName)
}

// Trigger returns the id of the triggering element.
func (h RequestHeaders) Trigger() (string, bool) {
	return headerString(h.h, HeaderHXTrigger)
}

// LogValue implements slog.LogValuer. Only htmx headers present on the
// request are included.
func (h RequestHeaders) LogValue() slog.Value {
	entries := DebugHeaders(h.h)
	attrs := make([]slog.Attr, 0, len(entries))
	for _, e := range entries {
		attrs = append(attrs, slog.String(e.Name, e.Value))
	}
	return slog.GroupValue(attrs...)
}
