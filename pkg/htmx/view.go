package htmx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

type viewDataKey struct{}

// ViewData returns the data attached to the view being rendered.
func ViewData(ctx context.Context) map[string]any {
	data, _ := ctx.Value(viewDataKey{}).(map[string]any)
	return data
}

// View renders a templ component, optionally wrapped in a layout.
// The layout receives the content as templ children ({ children... }).
type View struct {
	Content     templ.Component
	Layout      templ.Component
	Data        map[string]any
	ContentType string
	StatusCode  int
	// OOB components are rendered after the content for htmx requests only.
	OOB []templ.Component

	partial bool
}

// Partial returns a copy of v that renders without its layout.
// Data, content type and status are shared with v.
func (v *View) Partial() *View {
	c := *v
	c.partial = true
	return &c
}

// IsPartial reports whether the layout is suppressed.
func (v *View) IsPartial() bool {
	return v.partial || v.Layout == nil
}

func (v *View) withOOB(oob []templ.Component) *View {
	c := *v
	c.OOB = append(append([]templ.Component(nil), v.OOB...), oob...)
	return &c
}

// Execute implements Action.
func (v *View) Execute(w http.ResponseWriter, r *http.Request) error {
	if v.Content == nil {
		return ErrNoContent
	}

	ct := v.ContentType
	if ct == "" {
		ct = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", ct)

	status := v.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	ctx := r.Context()
	if v.Data != nil {
		ctx = context.WithValue(ctx, viewDataKey{}, v.Data)
	}

	var err error
	if v.IsPartial() {
		err = v.Content.Render(ctx, w)
	} else {
		err = v.Layout.Render(templ.WithChildren(ctx, v.Content), w)
	}
	if err != nil {
		return fmt.Errorf("htmx: render view: %w", err)
	}

	if !IsHTMX(r) {
		return nil
	}
	for _, c := range v.OOB {
		if err := c.Render(ctx, w); err != nil {
			return fmt.Errorf("htmx: render oob: %w", err)
		}
	}
	return nil
}
