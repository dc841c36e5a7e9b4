// Package todo holds the Todo entity and the page descriptor returned by
// paged listings.
package todo

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Todo represents a task item with tags and a deadline, optionally owned by
// an account.
type Todo struct {
	ID           uuid.UUID
	Title        string
	Description  string
	CreatedOnUTC time.Time
	IsCompleted  bool
	Tags         []string
	DeadlineUTC  time.Time
	AccountID    *uuid.UUID
}

// Changes holds the mutable fields of a Todo. ID, creation time and owner
// are never changed after creation.
type Changes struct {
	Title       string
	Description string
	IsCompleted bool
	Tags        []string
	DeadlineUTC time.Time
}

// New builds a fresh, incomplete Todo with a generated ID created at now.
func New(title, description string, tags []string, deadline, now time.Time, accountID *uuid.UUID) Todo {
	return Todo{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		CreatedOnUTC: now.UTC(),
		IsCompleted:  false,
		Tags:         slices.Clone(tags),
		DeadlineUTC:  deadline.UTC(),
		AccountID:    accountID,
	}
}

// Apply overwrites the mutable fields of t in place.
func (t *Todo) Apply(c Changes) {
	t.Title = c.Title
	t.Description = c.Description
	t.IsCompleted = c.IsCompleted
	t.Tags = slices.Clone(c.Tags)
	t.DeadlineUTC = c.DeadlineUTC.UTC()
}

// Clone returns a deep copy of t.
func (t Todo) Clone() Todo {
	t.Tags = slices.Clone(t.Tags)
	if t.AccountID != nil {
		id := *t.AccountID
		t.AccountID = &id
	}
	return t
}
