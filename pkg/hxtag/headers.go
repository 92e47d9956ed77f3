package hxtag

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"github.com/a-h/templ"
)

// Header attributes.
const (
	AttrAllHeaders   = "hx-all-headers"
	AttrHeaderPrefix = "hx-header-"
	AttrHeaders      = "hx-headers"
)

// HeadersAttr folds hx-all-headers and hx-header-* attributes into a single
// hx-headers JSON attribute. Header names keep their case. Individual
// hx-header-* attributes override entries of hx-all-headers.
func HeadersAttr(attrs templ.Attributes) (templ.Attributes, error) {
	if !hasHeaderAttrs(attrs) {
		return attrs, nil
	}

	out := maps.Clone(attrs)
	headers := map[string]string{}
	if all, ok := out[AttrAllHeaders]; ok {
		delete(out, AttrAllHeaders)
		for k, v := range stringMap(all) {
			headers[k] = v
		}
	}
	for name, v := range out {
		if key, ok := strings.CutPrefix(name, AttrHeaderPrefix); ok && key != "" {
			headers[key] = stringValue(v)
			delete(out, name)
		}
	}

	data, err := json.Marshal(headers)
	if err != nil {
		return nil, fmt.Errorf("hxtag: encode headers: %w", err)
	}
	out[AttrHeaders] = string(data)
	return out, nil
}

func hasHeaderAttrs(attrs templ.Attributes) bool {
	for name := range attrs {
		if name == AttrAllHeaders || (strings.HasPrefix(name, AttrHeaderPrefix) && len(name) > len(AttrHeaderPrefix)) {
			return true
		}
	}
	return false
}
