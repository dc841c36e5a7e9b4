package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// todoRecord is the stored form of a todo. Records are never mutated after
// insertion; updates replace them.
type todoRecord struct {
	ID   string
	Todo todo.Todo
}

func newTodoRecord(t *todo.Todo) *todoRecord {
	return &todoRecord{ID: t.ID.String(), Todo: t.Clone()}
}

// TodoStore implements [ports.TodoStore] in memory.
type TodoStore struct {
	db *memdb.MemDB
}

// Create inserts a new todo. An owner that does not exist yields
// domain.ErrNotFound, mirroring the foreign key of the SQL schema.
func (s *TodoStore) Create(ctx context.Context, t *todo.Todo) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if t.AccountID != nil {
		owner, err := txn.First(tableAccounts, indexID, t.AccountID.String())
		if err != nil {
			return fmt.Errorf("looking up todo owner: %w", err)
		}
		if owner == nil {
			return fmt.Errorf("todo owner %s: %w", t.AccountID, domain.ErrNotFound)
		}
	}

	existing, err := txn.First(tableTodos, indexID, t.ID.String())
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("todo %s: %w", t.ID, domain.ErrConflict)
	}

	if err := txn.Insert(tableTodos, newTodoRecord(t)); err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}
	txn.Commit()
	return nil
}

// FindByID returns a copy of the stored todo.
func (s *TodoStore) FindByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("finding todo: %w", err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableTodos, indexID, id.String())
	if err != nil {
		return nil, fmt.Errorf("finding todo: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}

	t := raw.(*todoRecord).Todo.Clone()
	return &t, nil
}

// Update replaces the mutable fields of a stored todo. The stored ID,
// creation time and owner are kept.
func (s *TodoStore) Update(ctx context.Context, t *todo.Todo) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableTodos, indexID, t.ID.String())
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("todo %s: %w", t.ID, domain.ErrNotFound)
	}

	updated := raw.(*todoRecord).Todo.Clone()
	updated.Apply(todo.Changes{
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		Tags:        t.Tags,
		DeadlineUTC: t.DeadlineUTC,
	})

	if err := txn.Insert(tableTodos, newTodoRecord(&updated)); err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}
	txn.Commit()
	return nil
}

// Delete removes a todo.
func (s *TodoStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableTodos, indexID, id.String())
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}

	if err := txn.Delete(tableTodos, raw); err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	txn.Commit()
	return nil
}

// Count returns the number of stored todos.
func (s *TodoStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableTodos, indexID)
	if err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}

	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}

// ListPage returns copies of up to limit todos after skipping offset, newest
// first, ties broken by descending ID.
func (s *TodoStore) ListPage(ctx context.Context, offset, limit int) ([]todo.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableTodos, indexID)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	var all []todo.Todo
	for raw := it.Next(); raw != nil; raw = it.Next() {
		all = append(all, raw.(*todoRecord).Todo)
	}

	slices.SortFunc(all, newestFirst)

	if offset >= len(all) {
		return []todo.Todo{}, nil
	}
	end := min(offset+limit, len(all))

	page := make([]todo.Todo, 0, end-offset)
	for _, t := range all[offset:end] {
		page = append(page, t.Clone())
	}
	return page, nil
}

func newestFirst(a, b todo.Todo) int {
	if c := b.CreatedOnUTC.Compare(a.CreatedOnUTC); c != 0 {
		return c
	}
	return slices.Compare(b.ID[:], a.ID[:])
}
