package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todolist-service/internal/domain/account"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	owner := uuid.MustParse("6f1c8f6e-8a51-4e2b-9d4c-0c6b7f0e1a2b")
	id := uuid.MustParse("0b9e2f7a-3c4d-4e5f-8a9b-1c2d3e4f5a6b")

	tests := []struct {
		name          string
		todo          todo.Todo
		wantAccountID *string
	}{
		{
			name: "owned todo",
			todo: todo.Todo{
				ID: id, Title: "Test", Description: "Desc", CreatedOnUTC: testTime,
				IsCompleted: true, Tags: []string{"a"}, DeadlineUTC: testTime.Add(time.Hour), AccountID: &owner,
			},
			wantAccountID: func() *string { s := owner.String(); return &s }(),
		},
		{
			name: "unowned todo",
			todo: todo.Todo{
				ID: id, Title: "Test", Description: "Desc", CreatedOnUTC: testTime,
				Tags: []string{"a"}, DeadlineUTC: testTime.Add(time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToTodoResponse(&tt.todo)

			if got.ID != id.String() {
				t.Errorf("ID = %q, want %q", got.ID, id)
			}
			if got.CreatedOnUTC != "2026-02-12T15:04:05Z" {
				t.Errorf("CreatedOnUTC = %q, want %q", got.CreatedOnUTC, "2026-02-12T15:04:05Z")
			}
			if got.DeadlineUTC != "2026-02-12T16:04:05Z" {
				t.Errorf("DeadlineUTC = %q, want %q", got.DeadlineUTC, "2026-02-12T16:04:05Z")
			}
			switch {
			case tt.wantAccountID == nil && got.AccountID != nil:
				t.Errorf("AccountID = %q, want nil", *got.AccountID)
			case tt.wantAccountID != nil && (got.AccountID == nil || *got.AccountID != *tt.wantAccountID):
				t.Errorf("AccountID = %v, want %q", got.AccountID, *tt.wantAccountID)
			}
		})
	}
}

func TestToTodoPageResponse(t *testing.T) {
	t.Parallel()

	page := todo.NewPage([]todo.Todo{
		todo.New("a", "a", []string{"x"}, testTime.Add(time.Hour), testTime, nil),
		todo.New("b", "b", []string{"x"}, testTime.Add(time.Hour), testTime, nil),
	}, 2, 3)

	got := dto.ToTodoPageResponse(&page)
	if len(got.Todos) != 2 {
		t.Errorf("len(Todos) = %d, want 2", len(got.Todos))
	}
	if got.PageNumber != 2 || got.TotalPages != 3 || !got.HasPreviousPage || !got.HasNextPage {
		t.Errorf("ToTodoPageResponse() = %+v", got)
	}

	empty := todo.NewPage(nil, 1, 0)
	data, err := json.Marshal(dto.ToTodoPageResponse(&empty))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if todos, ok := m["todos"].([]any); !ok || len(todos) != 0 {
		t.Errorf("todos = %v, want empty array", m["todos"])
	}
}

func TestTodoResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	td := todo.New("Test", "Desc", nil, testTime.Add(time.Hour), testTime, nil)
	data, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	requiredKeys := []string{
		"id", "title", "description", "createdOnUtc", "isCompleted", "tags", "deadlineUtc",
	}
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q, got keys: %v", key, keys(m))
		}
	}
	if _, ok := m["accountId"]; ok {
		t.Error("accountId present for an unowned todo, want omitted")
	}
	if tags, ok := m["tags"].([]any); !ok || len(tags) != 0 {
		t.Errorf("tags = %v, want empty array", m["tags"])
	}
}

func TestToAccountResponse_OmitsPassword(t *testing.T) {
	t.Parallel()

	acc := account.New("alice@example.com", "$2a$10$hash")
	data, err := json.Marshal(dto.ToAccountResponse(&acc))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if m["id"] != acc.ID.String() || m["email"] != "alice@example.com" {
		t.Errorf("ToAccountResponse() = %v", m)
	}
	for _, k := range []string{"password", "passwordHash"} {
		if _, ok := m[k]; ok {
			t.Errorf("JSON contains %q, want omitted", k)
		}
	}
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
