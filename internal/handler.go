package internal

// Handler declares routes on a router.
//
// Example:
//
//	type TodoHandler struct {
//	    repo *store.Todos
//	}
//
//	func (h *TodoHandler) Routes(r htmxkit.Router) {
//	    r.GET("/todos", h.list)
//	    r.Named("todo.delete", http.MethodDelete, "/todos/{id}", h.delete)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func HTMXOnly(next htmxkit.HandlerFunc) htmxkit.HandlerFunc {
//	    return func(c htmxkit.Context) error {
//	        if !c.IsHTMX() {
//	            return c.Redirect(http.StatusSeeOther, "/")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
