package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var testNow = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func validCreate() ports.CreateTodoCommand {
	return ports.CreateTodoCommand{
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Tags:        []string{"home"},
		DeadlineUTC: testNow.Add(24 * time.Hour),
	}
}

func TestValidate_CreateTodo(t *testing.T) {
	t.Parallel()

	v := New(fixedClock)

	tests := []struct {
		name     string
		mutate   func(c *ports.CreateTodoCommand)
		wantOK   bool
		wantLine string
	}{
		{name: "valid", mutate: func(*ports.CreateTodoCommand) {}, wantOK: true},
		{
			name:   "valid with owner",
			mutate: func(c *ports.CreateTodoCommand) { c.AccountID = uuid.NewString() },
			wantOK: true,
		},
		{
			name:     "empty title",
			mutate:   func(c *ports.CreateTodoCommand) { c.Title = "" },
			wantLine: "'Title' must not be empty.",
		},
		{
			name:     "whitespace title",
			mutate:   func(c *ports.CreateTodoCommand) { c.Title = "   " },
			wantLine: "'Title' must not be empty.",
		},
		{
			name:   "title at limit",
			mutate: func(c *ports.CreateTodoCommand) { c.Title = strings.Repeat("a", 50) },
			wantOK: true,
		},
		{
			name:     "title over limit",
			mutate:   func(c *ports.CreateTodoCommand) { c.Title = strings.Repeat("a", 51) },
			wantLine: "The length of 'Title' must be 50 characters or fewer. You entered 51 characters.",
		},
		{
			name:     "description over limit",
			mutate:   func(c *ports.CreateTodoCommand) { c.Description = strings.Repeat("d", 201) },
			wantLine: "The length of 'Description' must be 200 characters or fewer. You entered 201 characters.",
		},
		{
			name:     "no tags",
			mutate:   func(c *ports.CreateTodoCommand) { c.Tags = nil },
			wantLine: "'Tags' must not be empty.",
		},
		{
			name:     "empty tag list",
			mutate:   func(c *ports.CreateTodoCommand) { c.Tags = []string{} },
			wantLine: "'Tags' must not be empty.",
		},
		{
			name:     "blank tag",
			mutate:   func(c *ports.CreateTodoCommand) { c.Tags = []string{"ok", " "} },
			wantLine: "'Tags[1]' must not be empty.",
		},
		{
			name:     "tag over limit",
			mutate:   func(c *ports.CreateTodoCommand) { c.Tags = []string{"abcdefghijk"} },
			wantLine: "The length of 'Tags[0]' must be 10 characters or fewer. You entered 11 characters.",
		},
		{
			name:     "deadline now",
			mutate:   func(c *ports.CreateTodoCommand) { c.DeadlineUTC = testNow },
			wantLine: "'DeadlineUTC' must be later than the current UTC time.",
		},
		{
			name:     "deadline in past",
			mutate:   func(c *ports.CreateTodoCommand) { c.DeadlineUTC = testNow.Add(-time.Minute) },
			wantLine: "'DeadlineUTC' must be later than the current UTC time.",
		},
		{
			name:     "malformed owner",
			mutate:   func(c *ports.CreateTodoCommand) { c.AccountID = "not-a-uuid" },
			wantLine: "'AccountID' has not correct format: expected a UUID.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := validCreate()
			tt.mutate(&cmd)

			got, ok := v.Validate("CreateTodo", cmd)
			if ok != tt.wantOK {
				t.Fatalf("Validate() ok = %v, want %v (error %v)", ok, tt.wantOK, got)
			}
			if tt.wantOK {
				if !got.IsZero() {
					t.Errorf("Validate() error = %v, want None", got)
				}
				return
			}
			if got.Code != "CreateTodo.Validation" {
				t.Errorf("Code = %q, want %q", got.Code, "CreateTodo.Validation")
			}
			if !strings.Contains(got.Message, tt.wantLine) {
				t.Errorf("Message = %q, want it to contain %q", got.Message, tt.wantLine)
			}
			if !errors.Is(got, domain.ErrValidation) {
				t.Error("errors.Is(err, ErrValidation) = false, want true")
			}
		})
	}
}

func TestValidate_JoinsEveryViolation(t *testing.T) {
	t.Parallel()

	v := New(fixedClock)

	got, ok := v.Validate("CreateTodo", ports.CreateTodoCommand{})
	if ok {
		t.Fatal("Validate(zero command) ok = true, want false")
	}

	lines := strings.Split(got.Message, "\n")
	want := []string{
		"'Title' must not be empty.",
		"'Description' must not be empty.",
		"'Tags' must not be empty.",
		"'DeadlineUTC' must be later than the current UTC time.",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestValidate_FutureUsesClockAtCallTime(t *testing.T) {
	t.Parallel()

	now := testNow
	v := New(func() time.Time { return now })

	cmd := validCreate()
	cmd.DeadlineUTC = testNow.Add(time.Minute)

	if _, ok := v.Validate("CreateTodo", cmd); !ok {
		t.Fatal("Validate() before deadline ok = false, want true")
	}

	now = testNow.Add(2 * time.Minute)
	if _, ok := v.Validate("CreateTodo", cmd); ok {
		t.Error("Validate() after deadline ok = true, want false")
	}
}

func TestValidate_IDs(t *testing.T) {
	t.Parallel()

	v := New(fixedClock)

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"canonical", "4a1f0f53-6c5e-4d8c-9d3b-2a5b0c1e7f90", true},
		{"upper case", "4A1F0F53-6C5E-4D8C-9D3B-2A5B0C1E7F90", true},
		{"empty", "", false},
		{"garbage", "xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := v.Validate("GetTodoById", ports.GetTodoByIDQuery{ID: tt.id})
			if ok != tt.want {
				t.Fatalf("Validate(%q) ok = %v, want %v", tt.id, ok, tt.want)
			}
			if !ok && got.Code != "GetTodoById.Validation" {
				t.Errorf("Code = %q, want GetTodoById.Validation", got.Code)
			}
		})
	}
}

func TestValidate_ListTodos(t *testing.T) {
	t.Parallel()

	v := New(fixedClock)

	tests := []struct {
		name       string
		size, page int
		want       bool
	}{
		{"defaults", 5, 1, true},
		{"largest size", 99, 1, true},
		{"size 100", 100, 1, false},
		{"size 0", 0, 1, false},
		{"page 0", 5, 0, false},
		{"negative page", 5, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := v.Validate("GetAllTodos", ports.ListTodosQuery{PageSize: tt.size, PageNumber: tt.page})
			if ok != tt.want {
				t.Errorf("Validate(size=%d, page=%d) ok = %v, want %v", tt.size, tt.page, ok, tt.want)
			}
		})
	}
}

func TestValidate_CreateAccount(t *testing.T) {
	t.Parallel()

	v := New(fixedClock)

	tests := []struct {
		name     string
		cmd      ports.CreateAccountCommand
		wantLine string
	}{
		{"valid", ports.CreateAccountCommand{Email: "a@b.io", Password: "longenough"}, ""},
		{"long multibyte password", ports.CreateAccountCommand{Email: "a@b.io", Password: strings.Repeat("é", 40)}, ""},
		{"very long password", ports.CreateAccountCommand{Email: "a@b.io", Password: strings.Repeat("x", 500)}, ""},
		{"empty email", ports.CreateAccountCommand{Email: "", Password: "longenough"}, "'Email' must not be empty."},
		{"bad email", ports.CreateAccountCommand{Email: "nope", Password: "longenough"}, "'Email' is not a valid email address."},
		{
			"short password",
			ports.CreateAccountCommand{Email: "a@b.io", Password: "short"},
			"The length of 'Password' must be at least 8 characters. You entered 5 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := v.Validate("CreateAccount", tt.cmd)
			if tt.wantLine == "" {
				if !ok {
					t.Errorf("Validate() = %v, want ok", got)
				}
				return
			}
			if ok {
				t.Fatal("Validate() ok = true, want false")
			}
			if !strings.Contains(got.Message, tt.wantLine) {
				t.Errorf("Message = %q, want it to contain %q", got.Message, tt.wantLine)
			}
		})
	}
}

func TestValidate_NonStructPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Validate(non-struct) did not panic")
		}
	}()
	New(nil).Validate("Broken", 42)
}
