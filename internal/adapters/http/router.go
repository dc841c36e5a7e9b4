// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

var (
	errRouteNotFound    = domain.Error{Code: "Request.NotFound", Message: "No route matches the request path."}
	errMethodNotAllowed = domain.Error{Code: "Request.MethodNotAllowed", Message: "The route does not support this method."}
)

// Handlers groups the inbound handlers mounted by NewRouter.
type Handlers struct {
	Todo    *handlers.TodoHandler
	Account *handlers.AccountHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered
// in one explicit table. Middleware is applied globally in the order given;
// apiMiddleware (which may be empty) wraps only the /api routes, leaving the
// health probes unaffected.
func NewRouter(
	h Handlers,
	apiMiddleware []func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorStatus(w, req, http.StatusNotFound, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorStatus(w, req, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api", func(r chi.Router) {
		for _, mw := range apiMiddleware {
			r.Use(mw)
		}

		r.Get("/todos", h.Todo.ListTodos)
		r.Post("/todos", h.Todo.CreateTodo)
		r.Get("/todos/{id}", h.Todo.GetTodo)
		r.Put("/todos/{id}", h.Todo.UpdateTodo)
		r.Delete("/todos/{id}", h.Todo.DeleteTodo)

		r.Post("/accounts", h.Account.CreateAccount)
	})

	return r
}
