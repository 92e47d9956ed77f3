package htmx

import "net/http"

// Action writes a response. *View and ActionFunc implement it.
type Action interface {
	Execute(w http.ResponseWriter, r *http.Request) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(w http.ResponseWriter, r *http.Request) error

// Execute calls f(w, r).
func (f ActionFunc) Execute(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// Result wraps an action and mutates the htmx response headers before it runs.
// The configure callback only runs for htmx requests; other requests get the
// inner action untouched.
type Result struct {
	action    Action
	configure func(*Response)
	partial   bool
}

// NewResult wraps action with a header configuration callback.
func NewResult(action Action, configure func(*Response)) *Result {
	return &Result{action: action, configure: configure}
}

// AsPartial renders a wrapped *View without its layout for htmx requests.
func (res *Result) AsPartial() *Result {
	res.partial = true
	return res
}

// Execute implements Action.
func (res *Result) Execute(w http.ResponseWriter, r *http.Request) error {
	return execute(w, r, res.action, res.partial, res.configure)
}

// StateResult is a Result whose callback receives a caller-supplied state value.
type StateResult[S any] struct {
	action    Action
	configure func(*Response, S)
	state     S
	partial   bool
}

// NewStateResult wraps action with a stateful header configuration callback.
func NewStateResult[S any](action Action, configure func(*Response, S), state S) *StateResult[S] {
	return &StateResult[S]{action: action, configure: configure, state: state}
}

// AsPartial renders a wrapped *View without its layout for htmx requests.
func (res *StateResult[S]) AsPartial() *StateResult[S] {
	res.partial = true
	return res
}

// Execute implements Action.
func (res *StateResult[S]) Execute(w http.ResponseWriter, r *http.Request) error {
	var configure func(*Response)
	if res.configure != nil {
		configure = func(resp *Response) { res.configure(resp, res.state) }
	}
	return execute(w, r, res.action, res.partial, configure)
}

func execute(w http.ResponseWriter, r *http.Request, action Action, partial bool, configure func(*Response)) error {
	if !IsHTMX(r) {
		return action.Execute(w, r)
	}

	resp := NewResponse(w)
	if configure != nil {
		configure(resp)
	}
	if err := resp.Err(); err != nil {
		return err
	}

	if v, ok := action.(*View); ok {
		if partial {
			v = v.Partial()
		}
		if oob := resp.OOBComponents(); len(oob) > 0 {
			v = v.withOOB(oob)
		}
		action = v
	}

	if resp.Status() == 0 {
		return action.Execute(w, r)
	}

	sw := &statusWriter{ResponseWriter: w, status: resp.Status()}
	if err := action.Execute(sw, r); err != nil {
		return err
	}
	if !sw.wrote {
		sw.WriteHeader(http.StatusOK)
	}
	return nil
}

// Configure applies fn to the htmx headers of w when r is an htmx request.
// A pending status set by fn (StopPolling) is written immediately.
func Configure(w http.ResponseWriter, r *http.Request, fn func(*Response)) error {
	if !IsHTMX(r) {
		return nil
	}
	resp := NewResponse(w)
	fn(resp)
	if err := resp.Err(); err != nil {
		return err
	}
	if resp.Status() != 0 {
		w.WriteHeader(resp.Status())
	}
	return nil
}

// ConfigureState is Configure with a state value passed to fn.
func ConfigureState[S any](w http.ResponseWriter, r *http.Request, fn func(*Response, S), state S) error {
	return Configure(w, r, func(resp *Response) { fn(resp, state) })
}

// statusWriter replaces the first success status with a pending one.
// Error statuses written by the action pass through.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wrote {
		w.wrote = true
		if code >= 200 && code < 300 {
			code = w.status
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
