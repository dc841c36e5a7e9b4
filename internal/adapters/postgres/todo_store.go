package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

const todoColumns = `id, title, description, created_on_utc, is_completed, tags, deadline_utc, account_id`

type todoRow struct {
	ID           uuid.UUID      `db:"id"`
	Title        string         `db:"title"`
	Description  string         `db:"description"`
	CreatedOnUTC time.Time      `db:"created_on_utc"`
	IsCompleted  bool           `db:"is_completed"`
	Tags         pq.StringArray `db:"tags"`
	DeadlineUTC  time.Time      `db:"deadline_utc"`
	AccountID    uuid.NullUUID  `db:"account_id"`
}

func newTodoRow(t *todo.Todo) todoRow {
	row := todoRow{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		CreatedOnUTC: t.CreatedOnUTC.UTC(),
		IsCompleted:  t.IsCompleted,
		Tags:         pq.StringArray(t.Tags),
		DeadlineUTC:  t.DeadlineUTC.UTC(),
	}
	if t.AccountID != nil {
		row.AccountID = uuid.NullUUID{UUID: *t.AccountID, Valid: true}
	}
	return row
}

func (r todoRow) toDomain() todo.Todo {
	t := todo.Todo{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CreatedOnUTC: r.CreatedOnUTC.UTC(),
		IsCompleted:  r.IsCompleted,
		Tags:         []string(r.Tags),
		DeadlineUTC:  r.DeadlineUTC.UTC(),
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if r.AccountID.Valid {
		id := r.AccountID.UUID
		t.AccountID = &id
	}
	return t
}

// TodoStore implements [ports.TodoStore] on the todos table.
type TodoStore struct {
	db *DB
}

// Create inserts a new todo. An owner that does not exist violates the
// account foreign key and yields domain.ErrNotFound.
func (s *TodoStore) Create(ctx context.Context, t *todo.Todo) error {
	return s.db.run(ctx, "TodoStore.Create", func(ctx context.Context) error {
		const q = `INSERT INTO todos (` + todoColumns + `)
			VALUES (:id, :title, :description, :created_on_utc, :is_completed, :tags, :deadline_utc, :account_id)`

		_, err := s.db.x.NamedExecContext(ctx, q, newTodoRow(t))
		return translate(err, fmt.Sprintf("creating todo %s", t.ID))
	})
}

// FindByID returns the todo with the given ID.
func (s *TodoStore) FindByID(ctx context.Context, id uuid.UUID) (*todo.Todo, error) {
	var row todoRow
	err := s.db.run(ctx, "TodoStore.FindByID", func(ctx context.Context) error {
		const q = `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`
		return translate(s.db.x.GetContext(ctx, &row, q, id), fmt.Sprintf("todo %s", id))
	})
	if err != nil {
		return nil, err
	}

	t := row.toDomain()
	return &t, nil
}

// Update persists the mutable fields of t. The creation time and owner
// columns are never written.
func (s *TodoStore) Update(ctx context.Context, t *todo.Todo) error {
	return s.db.run(ctx, "TodoStore.Update", func(ctx context.Context) error {
		const q = `UPDATE todos
			SET title = $2, description = $3, is_completed = $4, tags = $5, deadline_utc = $6
			WHERE id = $1`

		res, err := s.db.x.ExecContext(ctx, q,
			t.ID, t.Title, t.Description, t.IsCompleted, pq.StringArray(t.Tags), t.DeadlineUTC.UTC())
		if err != nil {
			return translate(err, fmt.Sprintf("updating todo %s", t.ID))
		}
		return requireAffected(res, fmt.Sprintf("todo %s", t.ID))
	})
}

// Delete removes the todo with the given ID.
func (s *TodoStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.run(ctx, "TodoStore.Delete", func(ctx context.Context) error {
		res, err := s.db.x.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
		if err != nil {
			return translate(err, fmt.Sprintf("deleting todo %s", id))
		}
		return requireAffected(res, fmt.Sprintf("todo %s", id))
	})
}

// Count returns the number of rows in the todos table.
func (s *TodoStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.run(ctx, "TodoStore.Count", func(ctx context.Context) error {
		return translate(s.db.x.GetContext(ctx, &n, `SELECT COUNT(*) FROM todos`), "counting todos")
	})
	return n, err
}

// ListPage returns up to limit todos after skipping offset, newest first.
func (s *TodoStore) ListPage(ctx context.Context, offset, limit int) ([]todo.Todo, error) {
	var rows []todoRow
	err := s.db.run(ctx, "TodoStore.ListPage", func(ctx context.Context) error {
		const q = `SELECT ` + todoColumns + ` FROM todos
			ORDER BY created_on_utc DESC, id DESC
			LIMIT $1 OFFSET $2`
		return translate(s.db.x.SelectContext(ctx, &rows, q, limit, offset), "listing todos")
	})
	if err != nil {
		return nil, err
	}

	page := make([]todo.Todo, 0, len(rows))
	for _, r := range rows {
		page = append(page, r.toDomain())
	}
	return page, nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

// requireAffected turns a statement that matched no row into
// domain.ErrNotFound.
func requireAffected(res rowsAffecter, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: reading rows affected: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
