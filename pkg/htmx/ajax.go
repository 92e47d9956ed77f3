package htmx

import "encoding/json"

// AjaxContext mirrors the context object accepted by htmx.ajax and HX-Location.
// The path is supplied separately by the caller.
type AjaxContext struct {
	Source  string
	Event   string
	Handler string
	Target  string
	Swap    *Swap
	Values  map[string]string
	Headers map[string]string
	Select  string
}

type ajaxObject struct {
	Path    string            `json:"path,omitempty"`
	Source  string            `json:"source,omitempty"`
	Event   string            `json:"event,omitempty"`
	Handler string            `json:"handler,omitempty"`
	Target  string            `json:"target,omitempty"`
	Swap    string            `json:"swap,omitempty"`
	Values  map[string]string `json:"values,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Select  string            `json:"select,omitempty"`
}

// Encode returns the JSON form of the context for the given path.
func (a AjaxContext) Encode(path string) ([]byte, error) {
	obj := ajaxObject{
		Path:    path,
		Source:  a.Source,
		Event:   a.Event,
		Handler: a.Handler,
		Target:  a.Target,
		Values:  a.Values,
		Headers: a.Headers,
		Select:  a.Select,
	}
	if a.Swap != nil {
		obj.Swap = a.Swap.String()
	}
	return json.Marshal(obj)
}
