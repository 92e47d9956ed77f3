package htmx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

func TestParseSwap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want htmx.Swap
		ok   bool
	}{
		{"innerHTML", htmx.SwapInnerHTML, true},
		{"OUTERHTML", htmx.SwapOuterHTML, true},
		{"beforebegin", htmx.SwapBeforeBegin, true},
		{"AfterBegin", htmx.SwapAfterBegin, true},
		{"beforeend", htmx.SwapBeforeEnd, true},
		{"afterend", htmx.SwapAfterEnd, true},
		{"delete", htmx.SwapDelete, true},
		{"none", htmx.SwapNone, true},
		{"outerHTML swap:1s settle:2s", htmx.SwapOuterHTML, true},
		{"sideways", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := htmx.ParseSwap(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSwapString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "innerHTML", htmx.SwapInnerHTML.String())
	assert.Equal(t, "beforeend", htmx.SwapBeforeEnd.String())
	assert.Equal(t, "none", htmx.Swap("bogus").String())
	assert.False(t, htmx.Swap("bogus").Valid())
	assert.True(t, htmx.SwapDelete.Valid())
}
