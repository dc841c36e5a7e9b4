// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Every operation follows the same pipeline: validate the input, execute
// against the stores, and map the outcome into a [domain.Result]. Expected
// failures never surface as Go errors.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/app/validation"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// Operation names. They prefix the codes of validation and store errors.
const (
	opCreateTodo  = "CreateTodo"
	opUpdateTodo  = "UpdateTodo"
	opDeleteTodo  = "DeleteTodo"
	opGetTodoByID = "GetTodoById"
	opListTodos   = "GetAllTodos"
)

// ErrPageNotFound is returned by ListTodos when the requested page lies
// beyond the last one.
var ErrPageNotFound = domain.Business("GetAllTodos.Handle", "Not existed page")

// TodoService implements ports.TodoService on top of the todo and account
// stores.
type TodoService struct {
	todos     ports.TodoStore
	accounts  ports.AccountStore
	validator *validation.Validator
	now       func() time.Time
	logger    *slog.Logger
}

// NewTodoService creates a TodoService. The clock supplies creation
// timestamps and the reference instant for deadline checks; nil means
// time.Now. A nil logger discards output.
func NewTodoService(todos ports.TodoStore, accounts ports.AccountStore, clock func() time.Time, logger *slog.Logger) *TodoService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &TodoService{
		todos:     todos,
		accounts:  accounts,
		validator: validation.New(clock),
		now:       clock,
		logger:    logger,
	}
}

// CreateTodo validates the command and inserts a new, incomplete todo.
func (s *TodoService) CreateTodo(ctx context.Context, cmd ports.CreateTodoCommand) domain.Result[todo.Todo] {
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", cmd.Title))

	if verr, ok := s.validator.Validate(opCreateTodo, cmd); !ok {
		return domain.Failure[todo.Todo](verr)
	}

	var owner *uuid.UUID
	if cmd.AccountID != "" {
		id := uuid.MustParse(cmd.AccountID)
		if _, err := s.accounts.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Failure[todo.Todo](domain.AccountNotFound)
			}
			return storeFailure[todo.Todo](ctx, s.logger, "failed to look up todo owner", opCreateTodo, err,
				slog.String("account_id", id.String()))
		}
		owner = &id
	}

	td := todo.New(cmd.Title, cmd.Description, cmd.Tags, cmd.DeadlineUTC, s.now(), owner)

	if err := s.todos.Create(ctx, &td); err != nil {
		// The owner can disappear between the lookup and the insert.
		if owner != nil && errors.Is(err, domain.ErrNotFound) {
			return domain.Failure[todo.Todo](domain.AccountNotFound)
		}
		return storeFailure[todo.Todo](ctx, s.logger, "failed to create todo", opCreateTodo, err)
	}

	return domain.Success(td)
}

// UpdateTodo overwrites the mutable fields of an existing todo.
func (s *TodoService) UpdateTodo(ctx context.Context, cmd ports.UpdateTodoCommand) domain.Result[todo.Todo] {
	s.logger.InfoContext(ctx, "updating todo", slog.String("id", cmd.ID))

	if verr, ok := s.validator.Validate(opUpdateTodo, cmd); !ok {
		return domain.Failure[todo.Todo](verr)
	}
	id := uuid.MustParse(cmd.ID)

	td, err := s.todos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failure[todo.Todo](domain.TodoNotFound)
		}
		return storeFailure[todo.Todo](ctx, s.logger, "failed to fetch todo", opUpdateTodo, err,
			slog.String("id", cmd.ID))
	}

	td.Apply(todo.Changes{
		Title:       cmd.Title,
		Description: cmd.Description,
		IsCompleted: cmd.IsCompleted,
		Tags:        cmd.Tags,
		DeadlineUTC: cmd.DeadlineUTC,
	})

	if err := s.todos.Update(ctx, td); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failure[todo.Todo](domain.TodoNotFound)
		}
		return storeFailure[todo.Todo](ctx, s.logger, "failed to update todo", opUpdateTodo, err,
			slog.String("id", cmd.ID))
	}

	return domain.Success(*td)
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(ctx context.Context, cmd ports.DeleteTodoCommand) domain.Result[domain.Empty] {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("id", cmd.ID))

	if verr, ok := s.validator.Validate(opDeleteTodo, cmd); !ok {
		return domain.FailureEmpty(verr)
	}

	if err := s.todos.Delete(ctx, uuid.MustParse(cmd.ID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FailureEmpty(domain.TodoNotFound)
		}
		return storeFailure[domain.Empty](ctx, s.logger, "failed to delete todo", opDeleteTodo, err,
			slog.String("id", cmd.ID))
	}

	return domain.SuccessEmpty()
}

// GetTodoByID returns a single todo.
func (s *TodoService) GetTodoByID(ctx context.Context, q ports.GetTodoByIDQuery) domain.Result[todo.Todo] {
	s.logger.InfoContext(ctx, "fetching todo", slog.String("id", q.ID))

	if verr, ok := s.validator.Validate(opGetTodoByID, q); !ok {
		return domain.Failure[todo.Todo](verr)
	}

	td, err := s.todos.FindByID(ctx, uuid.MustParse(q.ID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Failure[todo.Todo](domain.TodoNotFound)
		}
		return storeFailure[todo.Todo](ctx, s.logger, "failed to fetch todo", opGetTodoByID, err,
			slog.String("id", q.ID))
	}

	return domain.Success(*td)
}

// ListTodos returns one page of todos, newest first. A page number beyond
// the last page fails with ErrPageNotFound; with no todos at all every page
// is beyond the last.
func (s *TodoService) ListTodos(ctx context.Context, q ports.ListTodosQuery) domain.Result[todo.Page] {
	s.logger.InfoContext(ctx, "listing todos",
		slog.Int("page_number", q.PageNumber),
		slog.Int("page_size", q.PageSize),
	)

	if verr, ok := s.validator.Validate(opListTodos, q); !ok {
		return domain.Failure[todo.Page](verr)
	}

	count, err := s.todos.Count(ctx)
	if err != nil {
		return storeFailure[todo.Page](ctx, s.logger, "failed to count todos", opListTodos, err)
	}

	totalPages := todo.TotalPages(count, q.PageSize)
	if q.PageNumber > totalPages {
		return domain.Failure[todo.Page](ErrPageNotFound)
	}

	items, err := s.todos.ListPage(ctx, todo.Offset(q.PageNumber, q.PageSize), q.PageSize)
	if err != nil {
		return storeFailure[todo.Page](ctx, s.logger, "failed to list todos", opListTodos, err,
			slog.Int("page_number", q.PageNumber))
	}

	return domain.Success(todo.NewPage(items, q.PageNumber, totalPages))
}

// storeFailure logs an infrastructure error with its full chain and turns it
// into an internal failure for op. The cause never leaves the service.
func storeFailure[T any](ctx context.Context, logger *slog.Logger, msg, op string, err error, attrs ...any) domain.Result[T] {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("operation", op))
	args = append(args, attrs...)
	args = append(args, slog.Any("error", err))
	logger.ErrorContext(ctx, msg, args...)

	return domain.Failure[T](domain.Internal(op + ".Store"))
}
