// Package account holds the Account entity.
package account

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

// Account is a user identity that owns todos. Email is unique across
// accounts. PasswordHash is a bcrypt hash; the plain password is never
// stored.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Todos        []todo.Todo
}

// New builds an Account with a generated ID and no todos.
func New(email, passwordHash string) Account {
	return Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Todos:        []todo.Todo{},
	}
}
