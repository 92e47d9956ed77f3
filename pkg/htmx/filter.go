package htmx

import "net/http"

// BoostFilter narrows a Filter by the HX-Boosted header.
type BoostFilter uint8

const (
	BoostAny  BoostFilter = iota // boosted or not
	BoostOnly                    // boosted requests only
	BoostNone                    // non-boosted requests only
)

// Filter matches htmx requests, optionally by boost state.
type Filter struct {
	Boost BoostFilter
}

// Match reports whether r is an htmx request accepted by the filter.
func (f Filter) Match(r *http.Request) bool {
	if !IsHTMX(r) {
		return false
	}
	switch f.Boost {
	case BoostOnly:
		return IsBoosted(r)
	case BoostNone:
		return !IsBoosted(r)
	default:
		return true
	}
}
