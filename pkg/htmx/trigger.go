package htmx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Timing selects when the client fires triggered events.
type Timing uint8

const (
	TimingReceive     Timing = iota // as soon as the response is received
	TimingAfterSettle               // after the settle step
	TimingAfterSwap                 // after the swap step
)

// Header returns the response header that carries events for the timing.
func (t Timing) Header() string {
	switch t {
	case TimingAfterSettle:
		return HeaderHXTriggerAfterSettle
	case TimingAfterSwap:
		return HeaderHXTriggerAfterSwap
	default:
		return HeaderHXTrigger
	}
}

// mergeEvents adds events to the JSON object stored under key.
// Keys already present in the header win over the supplied ones and keep
// their raw JSON value.
func mergeEvents(h http.Header, key string, events map[string]any) error {
	if len(events) == 0 {
		return nil
	}

	merged := make(map[string]json.RawMessage, len(events))
	if raw, ok := headerString(h, key); ok {
		prior, err := decodeRaw(key, raw)
		if err != nil {
			return err
		}
		merged = prior
	}
	for name, detail := range events {
		if _, exists := merged[name]; exists {
			continue
		}
		data, err := json.Marshal(detail)
		if err != nil {
			return fmt.Errorf("htmx: encode %s event %q: %w", key, name, err)
		}
		merged[name] = data
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("htmx: encode %s: %w", key, err)
	}
	h.Set(key, string(data))
	return nil
}

// decodeEvents returns nil when the header is absent.
func decodeEvents(h http.Header, key string) (map[string]any, error) {
	raw, ok := headerString(h, key)
	if !ok {
		return nil, nil
	}
	var events map[string]any
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEvents, key, err)
	}
	if events == nil {
		return nil, fmt.Errorf("%w: %s: not an object", ErrMalformedEvents, key)
	}
	return events, nil
}

// decodeRaw decodes a prior header value, which must be a JSON object.
func decodeRaw(key, raw string) (map[string]json.RawMessage, error) {
	var events map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedEvents, key, err)
	}
	if events == nil {
		return nil, fmt.Errorf("%w: %s: not an object", ErrMalformedEvents, key)
	}
	return events, nil
}
