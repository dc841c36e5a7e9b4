package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/dto"
)

func TestCreateTodoRequest_DecodeAndConvert(t *testing.T) {
	t.Parallel()

	body := `{
		"title": "Buy groceries",
		"description": "Milk, eggs",
		"tags": ["home", "errand"],
		"deadlineUtc": "2026-02-13T15:04:05Z",
		"accountId": "6f1c8f6e-8a51-4e2b-9d4c-0c6b7f0e1a2b"
	}`

	var req dto.CreateTodoRequest
	if err := json.NewDecoder(strings.NewReader(body)).Decode(&req); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	cmd := req.ToCommand()
	if cmd.Title != "Buy groceries" || cmd.Description != "Milk, eggs" {
		t.Errorf("ToCommand() = %+v", cmd)
	}
	if len(cmd.Tags) != 2 || cmd.Tags[1] != "errand" {
		t.Errorf("Tags = %v, want [home errand]", cmd.Tags)
	}
	if want := time.Date(2026, 2, 13, 15, 4, 5, 0, time.UTC); !cmd.DeadlineUTC.Equal(want) {
		t.Errorf("DeadlineUTC = %v, want %v", cmd.DeadlineUTC, want)
	}
	if cmd.AccountID != "6f1c8f6e-8a51-4e2b-9d4c-0c6b7f0e1a2b" {
		t.Errorf("AccountID = %q", cmd.AccountID)
	}
}

func TestCreateTodoRequest_MalformedDeadline(t *testing.T) {
	t.Parallel()

	var req dto.CreateTodoRequest
	err := json.NewDecoder(strings.NewReader(`{"deadlineUtc": "tomorrow"}`)).Decode(&req)
	if err == nil {
		t.Error("Decode() error = nil, want error for non RFC 3339 deadline")
	}
}

func TestUpdateTodoRequest_ToCommand(t *testing.T) {
	t.Parallel()

	req := dto.UpdateTodoRequest{
		Title:       "New",
		Description: "New desc",
		IsCompleted: true,
		Tags:        []string{"a"},
		DeadlineUTC: testTime,
	}

	cmd := req.ToCommand("6f1c8f6e-8a51-4e2b-9d4c-0c6b7f0e1a2b")
	if cmd.ID != "6f1c8f6e-8a51-4e2b-9d4c-0c6b7f0e1a2b" {
		t.Errorf("ID = %q, want path id", cmd.ID)
	}
	if !cmd.IsCompleted || cmd.Title != "New" || !cmd.DeadlineUTC.Equal(testTime) {
		t.Errorf("ToCommand() = %+v", cmd)
	}
}

func TestCreateAccountRequest_ToCommand(t *testing.T) {
	t.Parallel()

	req := dto.CreateAccountRequest{Email: "alice@example.com", Password: "s3cret-pass"}
	cmd := req.ToCommand()
	if cmd.Email != req.Email || cmd.Password != req.Password {
		t.Errorf("ToCommand() = %+v", cmd)
	}
}
