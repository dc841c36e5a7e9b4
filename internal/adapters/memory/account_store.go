package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.AccountStore = (*AccountStore)(nil)

type accountRecord struct {
	ID      string
	Email   string
	Account account.Account
}

// AccountStore implements [ports.AccountStore] in memory.
type AccountStore struct {
	db *memdb.MemDB
}

// Create inserts a new account. The email check and the insert share one
// write transaction, so two concurrent registrations of the same email cannot
// both succeed.
func (s *AccountStore) Create(ctx context.Context, a *account.Account) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	taken, err := txn.First(tableAccounts, indexEmail, a.Email)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	if taken != nil {
		return fmt.Errorf("account email: %w", domain.ErrConflict)
	}

	stored := *a
	stored.Todos = slices.Clone(a.Todos)
	rec := &accountRecord{ID: a.ID.String(), Email: a.Email, Account: stored}

	if err := txn.Insert(tableAccounts, rec); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	txn.Commit()
	return nil
}

// FindByID returns a copy of the stored account without its todos.
func (s *AccountStore) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableAccounts, indexID, id.String())
	if err != nil {
		return nil, fmt.Errorf("finding account: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}

	a := raw.(*accountRecord).Account
	a.Todos = []todo.Todo{}
	return &a, nil
}

// ExistsByEmail reports whether an account with exactly this email exists.
func (s *AccountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("checking account email: %w", err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableAccounts, indexEmail, email)
	if err != nil {
		return false, fmt.Errorf("checking account email: %w", err)
	}
	return raw != nil, nil
}
