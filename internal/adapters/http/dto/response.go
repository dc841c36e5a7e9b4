// Package dto provides HTTP request/response data transfer objects and the
// {code, message} error body for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CreatedOnUTC string   `json:"createdOnUtc"`
	IsCompleted  bool     `json:"isCompleted"`
	Tags         []string `json:"tags"`
	DeadlineUTC  string   `json:"deadlineUtc"`
	AccountID    *string  `json:"accountId,omitempty"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		CreatedOnUTC: t.CreatedOnUTC.UTC().Format(time.RFC3339Nano),
		IsCompleted:  t.IsCompleted,
		Tags:         t.Tags,
		DeadlineUTC:  t.DeadlineUTC.UTC().Format(time.RFC3339Nano),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.AccountID != nil {
		id := t.AccountID.String()
		resp.AccountID = &id
	}
	return resp
}

// TodoPageResponse represents one page of todos in HTTP responses.
type TodoPageResponse struct {
	Todos           []TodoResponse `json:"todos"`
	PageNumber      int            `json:"pageNumber"`
	TotalPages      int            `json:"totalPages"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
	HasNextPage     bool           `json:"hasNextPage"`
}

// ToTodoPageResponse converts a domain page to an HTTP response DTO.
func ToTodoPageResponse(p *todo.Page) TodoPageResponse {
	items := make([]TodoResponse, len(p.Todos))
	for i := range p.Todos {
		items[i] = ToTodoResponse(&p.Todos[i])
	}
	return TodoPageResponse{
		Todos:           items,
		PageNumber:      p.PageNumber,
		TotalPages:      p.TotalPages,
		HasPreviousPage: p.HasPreviousPage,
		HasNextPage:     p.HasNextPage,
	}
}

// AccountResponse is the public view of an account. The password hash is
// never included.
type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToAccountResponse converts a domain Account entity to an HTTP response DTO.
func ToAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{ID: a.ID.String(), Email: a.Email}
}
