package dto

import (
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	DeadlineUTC time.Time `json:"deadlineUtc"`
	AccountID   string    `json:"accountId,omitempty"`
}

// ToCommand converts the request to the service command.
func (r *CreateTodoRequest) ToCommand() ports.CreateTodoCommand {
	return ports.CreateTodoCommand{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		DeadlineUTC: r.DeadlineUTC,
		AccountID:   r.AccountID,
	}
}

// UpdateTodoRequest represents the JSON body for replacing the mutable
// fields of a todo. Every field is written; omitted fields are treated as
// their zero value and validated as such.
type UpdateTodoRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	Tags        []string  `json:"tags"`
	DeadlineUTC time.Time `json:"deadlineUtc"`
}

// ToCommand converts the request to the service command for the todo
// identified by id.
func (r *UpdateTodoRequest) ToCommand(id string) ports.UpdateTodoCommand {
	return ports.UpdateTodoCommand{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		IsCompleted: r.IsCompleted,
		Tags:        r.Tags,
		DeadlineUTC: r.DeadlineUTC,
	}
}

// CreateAccountRequest represents the JSON body for registering an account.
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToCommand converts the request to the service command.
func (r *CreateAccountRequest) ToCommand() ports.CreateAccountCommand {
	return ports.CreateAccountCommand{Email: r.Email, Password: r.Password}
}
