package hxtag

import (
	"net/http"

	"github.com/a-h/templ"
)

// Process runs the URL generator and then the header merge over attrs.
// The result can be spread onto an element: <button { attrs... }>.
func (g URLGenerator) Process(r *http.Request, attrs templ.Attributes) (templ.Attributes, error) {
	out, err := g.Apply(r, attrs)
	if err != nil {
		return nil, err
	}
	return HeadersAttr(out)
}
