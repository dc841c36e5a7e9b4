package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.AccountStore = (*AccountStore)(nil)

type accountRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
}

// AccountStore implements [ports.AccountStore] on the accounts table.
type AccountStore struct {
	db *DB
}

// Create inserts a new account. The unique email constraint turns a
// concurrent duplicate into domain.ErrConflict.
func (s *AccountStore) Create(ctx context.Context, a *account.Account) error {
	return s.db.run(ctx, "AccountStore.Create", func(ctx context.Context) error {
		const q = `INSERT INTO accounts (id, email, password_hash) VALUES (:id, :email, :password_hash)`

		row := accountRow{ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash}
		_, err := s.db.x.NamedExecContext(ctx, q, row)
		return translate(err, fmt.Sprintf("creating account %s", a.ID))
	})
}

// FindByID returns the account without its todos.
func (s *AccountStore) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var row accountRow
	err := s.db.run(ctx, "AccountStore.FindByID", func(ctx context.Context) error {
		const q = `SELECT id, email, password_hash FROM accounts WHERE id = $1`
		return translate(s.db.x.GetContext(ctx, &row, q, id), fmt.Sprintf("account %s", id))
	})
	if err != nil {
		return nil, err
	}

	return &account.Account{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Todos:        []todo.Todo{},
	}, nil
}

// ExistsByEmail reports whether an account with exactly this email exists.
func (s *AccountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.run(ctx, "AccountStore.ExistsByEmail", func(ctx context.Context) error {
		const q = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`
		return translate(s.db.x.GetContext(ctx, &exists, q, email), "checking account email")
	})
	return exists, err
}
