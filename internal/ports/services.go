package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoService defines the service port for todo use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method validates its input before touching the store, and reports
// expected failures through the returned Result rather than an error.
type TodoService interface {
	// CreateTodo validates and persists a new todo.
	// Fails with a validation error, or domain.AccountNotFound when the
	// command names an owner that does not exist.
	CreateTodo(ctx context.Context, cmd CreateTodoCommand) domain.Result[todo.Todo]

	// UpdateTodo overwrites the mutable fields of an existing todo.
	// Fails with a validation error or domain.TodoNotFound.
	UpdateTodo(ctx context.Context, cmd UpdateTodoCommand) domain.Result[todo.Todo]

	// DeleteTodo removes a todo.
	// Fails with a validation error or domain.TodoNotFound.
	DeleteTodo(ctx context.Context, cmd DeleteTodoCommand) domain.Result[domain.Empty]

	// GetTodoByID returns a single todo.
	// Fails with a validation error or domain.TodoNotFound.
	GetTodoByID(ctx context.Context, q GetTodoByIDQuery) domain.Result[todo.Todo]

	// ListTodos returns one page of todos, newest first.
	// Fails with a validation error or a business error when the page does
	// not exist.
	ListTodos(ctx context.Context, q ListTodosQuery) domain.Result[todo.Page]
}

// AccountService defines the service port for account use cases.
type AccountService interface {
	// CreateAccount registers a new account.
	// Fails with a validation error or domain.AccountAlreadyExists.
	CreateAccount(ctx context.Context, cmd CreateAccountCommand) domain.Result[account.Account]
}

// CreateTodoCommand is the input of TodoService.CreateTodo.
type CreateTodoCommand struct {
	Title       string    `validate:"notblank,max=50"`
	Description string    `validate:"notblank,max=200"`
	Tags        []string  `validate:"notblank,dive,notblank,max=10"`
	DeadlineUTC time.Time `validate:"future"`
	AccountID   string    `validate:"omitempty,guid"`
}

// UpdateTodoCommand is the input of TodoService.UpdateTodo.
type UpdateTodoCommand struct {
	ID          string    `validate:"guid"`
	Title       string    `validate:"notblank,max=50"`
	Description string    `validate:"notblank,max=200"`
	IsCompleted bool
	Tags        []string  `validate:"notblank,dive,notblank,max=10"`
	DeadlineUTC time.Time `validate:"future"`
}

// DeleteTodoCommand is the input of TodoService.DeleteTodo.
type DeleteTodoCommand struct {
	ID string `validate:"guid"`
}

// GetTodoByIDQuery is the input of TodoService.GetTodoByID.
type GetTodoByIDQuery struct {
	ID string `validate:"guid"`
}

// ListTodosQuery is the input of TodoService.ListTodos.
type ListTodosQuery struct {
	PageSize   int `validate:"gt=0,lt=100"`
	PageNumber int `validate:"gt=0"`
}

// CreateAccountCommand is the input of AccountService.CreateAccount.
type CreateAccountCommand struct {
	Email    string `validate:"notblank,email"`
	Password string `validate:"notblank,min=8"`
}
