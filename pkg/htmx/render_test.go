package htmx_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/htmxkit/pkg/htmx"
)

// mockComponent implements templ.Component for testing.
type mockComponent struct {
	content string
}

func (m mockComponent) Render(_ context.Context, w io.Writer) error {
	_, err := w.Write([]byte(m.content))
	return err
}

func TestApplyNoOptions(t *testing.T) {
	rec := httptest.NewRecorder()

	resp := htmx.Apply(rec)
	if resp == nil {
		t.Fatal("Apply returned nil")
	}
	if len(rec.Header()) != 0 {
		t.Errorf("headers = %v, want none", rec.Header())
	}
}

func TestWithRetarget(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithRetarget("#content"))

	got := rec.Header().Get("HX-Retarget")
	if got != "#content" {
		t.Errorf("HX-Retarget = %q, want %q", got, "#content")
	}
}

func TestWithReswap(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithReswap(htmx.SwapOuterHTML))

	got := rec.Header().Get("HX-Reswap")
	if got != "outerHTML" {
		t.Errorf("HX-Reswap = %q, want %q", got, "outerHTML")
	}
}

func TestWithPushURLFalse(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithPushURL("false"))

	got := rec.Header().Get("HX-Push-Url")
	if got != "false" {
		t.Errorf("HX-Push-Url = %q, want %q", got, "false")
	}
}

func TestWithReselectAndReplaceURL(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithReselect(".items"), htmx.WithReplaceURL("/new-url"))

	if got := rec.Header().Get("HX-Reselect"); got != ".items" {
		t.Errorf("HX-Reselect = %q, want %q", got, ".items")
	}
	if got := rec.Header().Get("HX-Replace-Url"); got != "/new-url" {
		t.Errorf("HX-Replace-Url = %q, want %q", got, "/new-url")
	}
}

func TestWithTrigger(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithTrigger("contacts-updated"))

	got := rec.Header().Get("HX-Trigger")
	want := `{"contacts-updated":""}`
	if got != want {
		t.Errorf("HX-Trigger = %q, want %q", got, want)
	}
}

func TestWithTriggerMultiple(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithTrigger("event2", "event1"), htmx.WithTrigger("event3"))

	got := rec.Header().Get("HX-Trigger")
	want := `{"event1":"","event2":"","event3":""}`
	if got != want {
		t.Errorf("HX-Trigger = %q, want %q", got, want)
	}
}

func TestWithTriggerDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithTriggerDetail("count", 3))

	got := rec.Header().Get("HX-Trigger")
	if got != `{"count":3}` {
		t.Errorf("HX-Trigger = %q, want %q", got, `{"count":3}`)
	}
}

func TestWithTriggerTimings(t *testing.T) {
	rec := httptest.NewRecorder()

	htmx.Apply(rec, htmx.WithTriggerAfterSwap("swapped"), htmx.WithTriggerAfterSettle("settled"))

	if got := rec.Header().Get("HX-Trigger-After-Swap"); got != `{"swapped":""}` {
		t.Errorf("HX-Trigger-After-Swap = %q", got)
	}
	if got := rec.Header().Get("HX-Trigger-After-Settle"); got != `{"settled":""}` {
		t.Errorf("HX-Trigger-After-Settle = %q", got)
	}
}

func TestWithRefreshAndStopPolling(t *testing.T) {
	rec := httptest.NewRecorder()

	resp := htmx.Apply(rec, htmx.WithRefresh(), htmx.WithStopPolling())

	if got := rec.Header().Get("HX-Refresh"); got != "true" {
		t.Errorf("HX-Refresh = %q, want %q", got, "true")
	}
	if resp.Status() != 286 {
		t.Errorf("Status = %d, want 286", resp.Status())
	}
}

func TestWithOOBAppends(t *testing.T) {
	comp1 := mockComponent{content: "<div>1</div>"}
	comp2 := mockComponent{content: "<div>2</div>"}

	resp := htmx.Apply(httptest.NewRecorder(), htmx.WithOOB(comp1), htmx.WithOOB(comp2))

	if len(resp.OOBComponents()) != 2 {
		t.Errorf("OOBComponents len = %d, want 2", len(resp.OOBComponents()))
	}
}
