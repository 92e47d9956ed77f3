package htmx

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// Response is a fluent builder for htmx response headers.
// Setters overwrite previous values and ignore empty ones, trigger methods merge.
// The first error is kept and reported by Err; later calls still run.
type Response struct {
	w      http.ResponseWriter
	status int
	oob    []templ.Component
	err    error
}

// NewResponse returns a builder writing into w's header map.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Headers returns the typed header view of the response.
func (r *Response) Headers() ResponseHeaders {
	return NewResponseHeaders(r.w)
}

// Err returns the first error recorded by the builder.
func (r *Response) Err() error {
	return r.err
}

// Status returns the pending status code, or 0 when none is set.
func (r *Response) Status() int {
	return r.status
}

// OOBComponents returns the out-of-band components queued for rendering.
func (r *Response) OOBComponents() []templ.Component {
	return r.oob
}

func (r *Response) set(key, value string) *Response {
	r.Headers().set(key, value)
	return r
}

func (r *Response) fail(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Location sets HX-Location to a plain path.
func (r *Response) Location(path string) *Response {
	return r.set(HeaderHXLocation, path)
}

// LocationContext sets HX-Location to a JSON ajax context.
func (r *Response) LocationContext(path string, actx AjaxContext) *Response {
	data, err := actx.Encode(path)
	if err != nil {
		r.fail(fmt.Errorf("htmx: encode location: %w", err))
		return r
	}
	return r.set(HeaderHXLocation, string(data))
}

// PushURL sets HX-Push-Url.
func (r *Response) PushURL(url string) *Response {
	return r.set(HeaderHXPushURL, url)
}

// Redirect sets HX-Redirect.
func (r *Response) Redirect(url string) *Response {
	return r.set(HeaderHXRedirect, url)
}

// Refresh sets HX-Refresh to "true".
func (r *Response) Refresh() *Response {
	return r.set(HeaderHXRefresh, "true")
}

// ReplaceURL sets HX-Replace-Url.
func (r *Response) ReplaceURL(url string) *Response {
	return r.set(HeaderHXReplaceURL, url)
}

// Reswap sets HX-Reswap to the given style.
func (r *Response) Reswap(s Swap) *Response {
	return r.set(HeaderHXReswap, s.String())
}

// ReswapExpr sets HX-Reswap verbatim, modifiers included.
func (r *Response) ReswapExpr(expr string) *Response {
	return r.set(HeaderHXReswap, expr)
}

// Retarget sets HX-Retarget.
func (r *Response) Retarget(selector string) *Response {
	return r.set(HeaderHXRetarget, selector)
}

// Reselect sets HX-Reselect.
func (r *Response) Reselect(selector string) *Response {
	return r.set(HeaderHXReselect, selector)
}

// TriggerEvent adds an event with an empty-string detail.
func (r *Response) TriggerEvent(name string, t Timing) *Response {
	return r.TriggerEventDetail(name, "", t)
}

// TriggerEventDetail adds an event with the given detail.
func (r *Response) TriggerEventDetail(name string, detail any, t Timing) *Response {
	return r.TriggerEvents(map[string]any{name: detail}, t)
}

// TriggerEvents merges events into the header selected by t.
// Events already present in the header are kept.
func (r *Response) TriggerEvents(events map[string]any, t Timing) *Response {
	r.fail(mergeEvents(r.w.Header(), t.Header(), events))
	return r
}

// StopPolling marks the response with status 286.
func (r *Response) StopPolling() *Response {
	r.status = StopPollingStatus
	return r
}

// StopPollingIf calls StopPolling when cond is true.
func (r *Response) StopPollingIf(cond bool) *Response {
	if cond {
		r.StopPolling()
	}
	return r
}

// OOB queues components rendered out-of-band after the main content.
func (r *Response) OOB(components ...templ.Component) *Response {
	r.oob = append(r.oob, components...)
	return r
}
