package htmx

import "net/http"

// ResponseHeaders is a view over the htmx headers of a response.
// Setters are additive: an empty value leaves the header untouched.
type ResponseHeaders struct {
	h http.Header
}

// NewResponseHeaders returns the htmx header view of w.
func NewResponseHeaders(w http.ResponseWriter) ResponseHeaders {
	return ResponseHeaders{h: w.Header()}
}

func (h ResponseHeaders) set(key, value string) {
	if value != "" {
		h.h.Set(key, value)
	}
}

// Location returns the HX-Location value.
func (h ResponseHeaders) Location() (string, bool) {
	return headerString(h.h, HeaderHXLocation)
}

// SetLocation makes the client navigate without a full page reload.
func (h ResponseHeaders) SetLocation(v string) { h.set(HeaderHXLocation, v) }

// PushURL returns the HX-Push-Url value.
func (h ResponseHeaders) PushURL() (string, bool) {
	return headerString(h.h, HeaderHXPushURL)
}

// SetPushURL pushes a new URL into the history stack.
func (h ResponseHeaders) SetPushURL(v string) { h.set(HeaderHXPushURL, v) }

// Redirect returns the HX-Redirect value.
func (h ResponseHeaders) Redirect() (string, bool) {
	return headerString(h.h, HeaderHXRedirect)
}

// SetRedirect makes the client perform a full redirect.
func (h ResponseHeaders) SetRedirect(v string) { h.set(HeaderHXRedirect, v) }

// Refresh reports whether HX-Refresh is "true".
func (h ResponseHeaders) Refresh() bool {
	return h.h.Get(HeaderHXRefresh) == "true"
}

// SetRefresh makes the client refresh the page. False is a no-op.
func (h ResponseHeaders) SetRefresh(v bool) {
	if v {
		h.h.Set(HeaderHXRefresh, "true")
	}
}

// ReplaceURL returns the HX-Replace-Url value.
func (h ResponseHeaders) ReplaceURL() (string, bool) {
	return headerString(h.h, HeaderHXReplaceURL)
}

// SetReplaceURL replaces the current URL in the location bar.
func (h ResponseHeaders) SetReplaceURL(v string) { h.set(HeaderHXReplaceURL, v) }

// Reswap returns the parsed HX-Reswap style. Modifiers are ignored.
func (h ResponseHeaders) Reswap() (Swap, bool) {
	raw, ok := headerString(h.h, HeaderHXReswap)
	if !ok {
		return "", false
	}
	return ParseSwap(raw)
}

// SetReswap overrides the swap style of the response.
func (h ResponseHeaders) SetReswap(s Swap) { h.set(HeaderHXReswap, s.String()) }

// ReswapExpression returns the raw HX-Reswap value, modifiers included.
func (h ResponseHeaders) ReswapExpression() (string, bool) {
	return headerString(h.h, HeaderHXReswap)
}

// SetReswapExpression sets HX-Reswap verbatim, e.g. "innerHTML swap:1s".
func (h ResponseHeaders) SetReswapExpression(v string) { h.set(HeaderHXReswap, v) }

// Retarget returns the HX-Retarget value.
func (h ResponseHeaders) Retarget() (string, bool) {
	return headerString(h.h, HeaderHXRetarget)
}

// SetRetarget updates the target of the content update to another element.
func (h ResponseHeaders) SetRetarget(v string) { h.set(HeaderHXRetarget, v) }

// Reselect returns the HX-Reselect value.
func (h ResponseHeaders) Reselect() (string, bool) {
	return headerString(h.h, HeaderHXReselect)
}

// SetReselect chooses which part of the response is swapped in.
func (h ResponseHeaders) SetReselect(v string) { h.set(HeaderHXReselect, v) }

// Trigger decodes the HX-Trigger events. Absent header yields nil.
func (h ResponseHeaders) Trigger() (map[string]any, error) {
	return decodeEvents(h.h, HeaderHXTrigger)
}

// SetTrigger merges events into HX-Trigger.
func (h ResponseHeaders) SetTrigger(events map[string]any) error {
	return mergeEvents(h.h, HeaderHXTrigger, events)
}

// TriggerAfterSettle decodes the HX-Trigger-After-Settle events.
func (h ResponseHeaders) TriggerAfterSettle() (map[string]any, error) {
	return decodeEvents(h.h, HeaderHXTriggerAfterSettle)
}

// SetTriggerAfterSettle merges events into HX-Trigger-After-Settle.
func (h ResponseHeaders) SetTriggerAfterSettle(events map[string]any) error {
	return mergeEvents(h.h, HeaderHXTriggerAfterSettle, events)
}

// TriggerAfterSwap decodes the HX-Trigger-After-Swap events.
func (h ResponseHeaders) TriggerAfterSwap() (map[string]any, error) {
	return decodeEvents(h.h, HeaderHXTriggerAfterSwap)
}

// SetTriggerAfterSwap merges events into HX-Trigger-After-Swap.
func (h ResponseHeaders) SetTriggerAfterSwap(events map[string]any) error {
	return mergeEvents(h.h, HeaderHXTriggerAfterSwap, events)
}

// Events decodes the events stored for the given timing.
func (h ResponseHeaders) Events(t Timing) (map[string]any, error) {
	return decodeEvents(h.h, t.Header())
}

// SetEvents merges events into the header of the given timing.
func (h ResponseHeaders) SetEvents(t Timing, events map[string]any) error {
	return mergeEvents(h.h, t.Header(), events)
}
