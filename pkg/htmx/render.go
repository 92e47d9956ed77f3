package htmx

import (
	"net/http"

	"github.com/a-h/templ"
)

// RenderOption configures the htmx part of a rendered response.
type RenderOption func(*Response)

// Apply runs opts against a fresh Response bound to w.
// Callers check Err before writing the status line.
func Apply(w http.ResponseWriter, opts ...RenderOption) *Response {
	resp := NewResponse(w)
	for _, opt := range opts {
		opt(resp)
	}
	return resp
}

// WithOOB appends out-of-band components to render after the main component.
// Components must include id and hx-swap-oob attributes.
func WithOOB(components ...templ.Component) RenderOption {
	return func(r *Response) {
		r.OOB(components...)
	}
}

// WithRetarget sets the HX-Retarget header to change the target element.
func WithRetarget(selector string) RenderOption {
	return func(r *Response) {
		r.Retarget(selector)
	}
}

// WithReswap sets the HX-Reswap header to change the swap strategy.
func WithReswap(s Swap) RenderOption {
	return func(r *Response) {
		r.Reswap(s)
	}
}

// WithReselect sets the HX-Reselect header to select a subset of the response.
func WithReselect(selector string) RenderOption {
	return func(r *Response) {
		r.Reselect(selector)
	}
}

// WithPushURL sets the HX-Push-Url header to update browser history.
// Pass "false" to prevent URL update.
func WithPushURL(url string) RenderOption {
	return func(r *Response) {
		r.PushURL(url)
	}
}

// WithReplaceURL sets the HX-Replace-Url header to replace current URL.
// Pass "false" to prevent URL replacement.
func WithReplaceURL(url string) RenderOption {
	return func(r *Response) {
		r.ReplaceURL(url)
	}
}

// WithTrigger adds events to the HX-Trigger header.
func WithTrigger(events ...string) RenderOption {
	return triggerNames(TimingReceive, events)
}

// WithTriggerDetail adds a single event with a detail payload to HX-Trigger.
func WithTriggerDetail(name string, detail any) RenderOption {
	return func(r *Response) {
		r.TriggerEventDetail(name, detail, TimingReceive)
	}
}

// WithTriggerAfterSwap adds events to the HX-Trigger-After-Swap header.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return triggerNames(TimingAfterSwap, events)
}

// WithTriggerAfterSettle adds events to the HX-Trigger-After-Settle header.
func WithTriggerAfterSettle(events ...string) RenderOption {
	return triggerNames(TimingAfterSettle, events)
}

// WithRefresh sets the HX-Refresh header to force a full page refresh.
func WithRefresh() RenderOption {
	return func(r *Response) {
		r.Refresh()
	}
}

// WithStopPolling answers with status 286 so the client stops polling.
func WithStopPolling() RenderOption {
	return func(r *Response) {
		r.StopPolling()
	}
}

func triggerNames(t Timing, names []string) RenderOption {
	return func(r *Response) {
		if len(names) == 0 {
			return
		}
		events := make(map[string]any, len(names))
		for _, name := range names {
			events[name] = ""
		}
		r.TriggerEvents(events, t)
	}
}
