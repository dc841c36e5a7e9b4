// Package memory provides in-process implementations of the store ports
// backed by hashicorp/go-memdb. It serves local development and tests; data
// does not survive a restart.
//
// Both stores share one database so that the owner reference from a todo to
// an account is checked inside the same transaction that writes the todo.
package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

const (
	tableTodos    = "todos"
	tableAccounts = "accounts"

	indexID    = "id"
	indexEmail = "email"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*DB)(nil)

// DB owns the go-memdb database behind the memory stores.
type DB struct {
	db *memdb.MemDB
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableTodos: {
				Name: tableTodos,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			tableAccounts: {
				Name: tableAccounts,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexEmail: {
						Name:    indexEmail,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
		},
	}
}

// New creates an empty database.
func New() (*DB, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("creating memory database: %w", err)
	}
	return &DB{db: db}, nil
}

// Todos returns the todo store view of the database.
func (d *DB) Todos() *TodoStore {
	return &TodoStore{db: d.db}
}

// Accounts returns the account store view of the database.
func (d *DB) Accounts() *AccountStore {
	return &AccountStore{db: d.db}
}

// Name returns the health check component name.
func (d *DB) Name() string {
	return "memory-store"
}

// HealthCheck always succeeds; the database lives in process memory.
func (d *DB) HealthCheck(_ context.Context) error {
	return nil
}
