package htmx

// Response headers understood by the htmx client.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXTrigger            = "HX-Trigger"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// Request headers sent by the htmx client.
// HX-Trigger is shared with the response set: on requests it carries the id
// of the triggering element.
const (
	HeaderHXRequest               = "HX-Request"
	HeaderHXBoosted               = "HX-Boosted"
	HeaderHXCurrentURL            = "HX-Current-URL"
	HeaderHXHistoryRestoreRequest = "HX-History-Restore-Request"
	HeaderHXPrompt                = "HX-Prompt"
	HeaderHXTarget                = "HX-Target"
	HeaderHXTriggerName           = "HX-Trigger-Name"
)

// StopPollingStatus is the status code that tells the htmx client to stop polling.
const StopPollingStatus = 286

// RequestHeaderNames lists every request header defined by the htmx protocol.
var RequestHeaderNames = []string{
	HeaderHXBoosted,
	HeaderHXCurrentURL,
	HeaderHXHistoryRestoreRequest,
	HeaderHXPrompt,
	HeaderHXRequest,
	HeaderHXTarget,
	HeaderHXTriggerName,
	HeaderHXTrigger,
}

// ResponseHeaderNames lists every response header defined by the htmx protocol.
var ResponseHeaderNames = []string{
	HeaderHXLocation,
	HeaderHXPushURL,
	HeaderHXRedirect,
	HeaderHXRefresh,
	HeaderHXReplaceURL,
	HeaderHXReswap,
	HeaderHXRetarget,
	HeaderHXReselect,
	HeaderHXTrigger,
	HeaderHXTriggerAfterSettle,
	HeaderHXTriggerAfterSwap,
}
