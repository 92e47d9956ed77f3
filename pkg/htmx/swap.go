package htmx

import "strings"

// Swap defines how HTMX should swap content into the target element.
type Swap string

const (
	SwapInnerHTML   Swap = "innerHTML"   // Replace the inner html of the target element
	SwapOuterHTML   Swap = "outerHTML"   // Replace the entire target element with the response
	SwapBeforeBegin Swap = "beforebegin" // Insert before the target element
	SwapAfterBegin  Swap = "afterbegin"  // Insert before the first child of the target element
	SwapBeforeEnd   Swap = "beforeend"   // Insert after the last child of the target element
	SwapAfterEnd    Swap = "afterend"    // Insert after the target element
	SwapDelete      Swap = "delete"      // Delete the target element
	SwapNone        Swap = "none"        // Do not swap content
)

var swaps = [...]Swap{
	SwapInnerHTML,
	SwapOuterHTML,
	SwapBeforeBegin,
	SwapAfterBegin,
	SwapBeforeEnd,
	SwapAfterEnd,
	SwapDelete,
	SwapNone,
}

// ParseSwap parses a swap style case-insensitively. Modifiers after the first
// space ("innerHTML swap:1s") are ignored.
func ParseSwap(s string) (Swap, bool) {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	for _, sw := range swaps {
		if strings.EqualFold(s, string(sw)) {
			return sw, true
		}
	}
	return "", false
}

// Valid reports whether s is one of the known swap styles.
func (s Swap) Valid() bool {
	for _, sw := range swaps {
		if s == sw {
			return true
		}
	}
	return false
}

// String returns the wire form of the swap style. Unknown values map to "none".
func (s Swap) String() string {
	if !s.Valid() {
		return string(SwapNone)
	}
	return string(s)
}
