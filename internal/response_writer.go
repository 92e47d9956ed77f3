package internal

import (
	"bufio"
	"net"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter to intercept the status line.
// Hooks registered with OnBeforeWrite run once, right before headers are
// sent, and may still change headers or the status via OverrideStatus.
//
// For htmx requests statuses outside 2xx are sent as 200 so htmx swaps the
// body; Status keeps the code the handler asked for. 2xx codes such as 204
// and 286 (stop polling) are sent as is.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	size        int64
	written     bool
	failed      bool
	isHTMX      bool
	beforeWrite []func()
	mu          sync.Mutex
}

// NewResponseWriter creates a new ResponseWriter.
func NewResponseWriter(w http.ResponseWriter, isHTMX bool) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
		isHTMX:         isHTMX,
	}
}

// OnBeforeWrite registers a hook to run before the first write.
// Hooks run in registration order. Hooks registered after the first write
// never run.
func (w *ResponseWriter) OnBeforeWrite(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written {
		return
	}
	w.beforeWrite = append(w.beforeWrite, fn)
}

// OverrideStatus replaces the pending status. It only has an effect
// before headers are sent, which makes it usable from OnBeforeWrite hooks.
func (w *ResponseWriter) OverrideStatus(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = code
}

// WriteHeader runs the hooks and sends the status line.
// Subsequent calls are ignored.
func (w *ResponseWriter) WriteHeader(code int) {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.status = code
	w.mu.Unlock()
	w.commit()
}

// Write writes the data to the connection, sending a 200 status first if
// WriteHeader was not called.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.commit()
	n, err := w.ResponseWriter.Write(b)
	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

func (w *ResponseWriter) commit() {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.written = true
	hooks := w.beforeWrite
	w.beforeWrite = nil
	w.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	w.ResponseWriter.WriteHeader(w.wireStatus())
}

func (w *ResponseWriter) wireStatus() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.isHTMX && (w.status < 200 || w.status > 299) {
		return http.StatusOK
	}
	return w.status
}

// Status returns the status requested by the handler.
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of bytes written to the response body.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Written returns true if the response has been written.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// MarkFailed records that the handler chain returned an error.
// The app calls it before handing the error to the error handler.
func (w *ResponseWriter) MarkFailed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failed = true
}

// Failed reports whether MarkFailed was called.
func (w *ResponseWriter) Failed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failed
}

// IsHTMX reports whether the writer serves an htmx request.
func (w *ResponseWriter) IsHTMX() bool {
	return w.isHTMX
}

// Flush implements the http.Flusher interface.
func (w *ResponseWriter) Flush() {
	w.commit()
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements the http.Hijacker interface.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
