// Package htmx provides utilities for working with HTMX requests and responses.
//
// HTMX enables developers to access AJAX, WebSockets, and Server-Sent Events
// directly in HTML attributes. This package models the header protocol between
// the htmx client and the server: typed views over request and response
// headers, a fluent response builder and action wrappers that only touch the
// response when the request came from htmx.
//
// # Request Detection
//
// IsHTMX checks for the presence of the HX-Request header. The value is not
// inspected, so "HX-Request: false" still counts as an htmx request:
//
//	func myHandler(w http.ResponseWriter, r *http.Request) {
//		if htmx.IsHTMX(r) {
//			h := htmx.NewRequestHeaders(r)
//			target, _ := h.Target()
//			// ...
//		}
//	}
//
// Boolean headers (HX-Boosted, HX-History-Restore-Request) are true only when
// they carry exactly one value equal to "true".
//
// # Response Headers
//
// Response builds htmx response headers fluently:
//
//	htmx.NewResponse(w).
//		Retarget("#contacts").
//		Reswap(htmx.SwapOuterHTML).
//		TriggerEventDetail("showMessage", toast, htmx.TimingAfterSettle)
//
// Trigger headers hold a JSON object of event name to detail. Adding events
// merges with what is already there and the existing entry wins on conflict.
//
// # Results
//
// Result and StateResult wrap any Action (for instance a *View) and configure
// the htmx headers right before it runs:
//
//	res := htmx.NewResult(view, func(r *htmx.Response) {
//		r.StopPollingIf(job.Done())
//	}).AsPartial()
//	return res.Execute(w, r)
//
// StopPolling answers with status 286, which makes the client stop polling.
//
// # Navigation and Redirects
//
// Location and Redirect detect htmx requests and answer with the matching
// HX header, or with a regular HTTP redirect otherwise:
//
//	htmx.Redirect(w, r, "/new-page")
//	htmx.LocationTarget(w, r, "/api/users", "#user-list")
//
// # Swap Strategies
//
// The Swap type defines how content should be inserted into the target element:
//   - SwapInnerHTML: Replace inner HTML (default)
//   - SwapOuterHTML: Replace entire element
//   - SwapBeforeBegin: Insert before element
//   - SwapAfterBegin: Insert before first child
//   - SwapBeforeEnd: Insert after last child
//   - SwapAfterEnd: Insert after element
//   - SwapDelete: Remove the element
//   - SwapNone: Don't swap
package htmx
