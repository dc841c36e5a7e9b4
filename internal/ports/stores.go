package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// TodoStore is the persistence gateway for todos.
// Implemented by the postgres and memory adapters; called by the application layer.
// Every method is a single atomic store operation.
type TodoStore interface {
	// Create inserts a new todo.
	Create(ctx context.Context, t *todo.Todo) error

	// FindByID returns the todo with the given ID.
	// Returns domain.ErrNotFound if no such todo exists.
	FindByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error)

	// Update persists the mutable fields of an existing todo.
	// Returns domain.ErrNotFound if the todo no longer exists.
	Update(ctx context.Context, t *todo.Todo) error

	// Delete removes the todo with the given ID.
	// Returns domain.ErrNotFound if no such todo exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of todos.
	Count(ctx context.Context) (int, error)

	// ListPage returns up to limit todos after skipping offset, ordered by
	// creation time descending with ID descending as the tie-breaker.
	ListPage(ctx context.Context, offset, limit int) ([]todo.Todo, error)
}

// AccountStore is the persistence gateway for accounts.
type AccountStore interface {
	// Create inserts a new account.
	// Returns domain.ErrConflict if an account with the same email exists.
	Create(ctx context.Context, a *account.Account) error

	// FindByID returns the account with the given ID, without its todos.
	// Returns domain.ErrNotFound if no such account exists.
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// ExistsByEmail reports whether an account with exactly this email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordHasher turns a plain-text password into a storable hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
