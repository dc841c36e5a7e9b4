package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Page parameters applied when the query string omits them.
const (
	defaultPageSize   = 5
	defaultPageNumber = 1
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ListTodos handles GET /api/todos?pageSize&pageNumber.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	size, okSize := queryInt(r, "pageSize", defaultPageSize)
	number, okNumber := queryInt(r, "pageNumber", defaultPageNumber)
	if !okSize || !okNumber {
		dto.WriteErrorResponse(w, r, dto.ErrInvalidQuery)
		return
	}

	res := h.svc.ListTodos(r.Context(), ports.ListTodosQuery{PageSize: size, PageNumber: number})
	writeResult(w, r, res, dto.ToTodoPageResponse)
}

// CreateTodo handles POST /api/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	res := h.svc.CreateTodo(r.Context(), req.ToCommand())
	writeResult(w, r, res, dto.ToTodoResponse)
}

// GetTodo handles GET /api/todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GetTodoByID(r.Context(), ports.GetTodoByIDQuery{ID: chi.URLParam(r, "id")})
	writeResult(w, r, res, dto.ToTodoResponse)
}

// UpdateTodo handles PUT /api/todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	res := h.svc.UpdateTodo(r.Context(), req.ToCommand(chi.URLParam(r, "id")))
	writeResult(w, r, res, dto.ToTodoResponse)
}

// DeleteTodo handles DELETE /api/todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	res := h.svc.DeleteTodo(r.Context(), ports.DeleteTodoCommand{ID: chi.URLParam(r, "id")})
	if res.IsFailure() {
		dto.WriteErrorResponse(w, r, res.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
