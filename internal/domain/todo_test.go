package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewTodo(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	todo, err := NewTodo(userID, "buy milk")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if todo.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if todo.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, todo.UserID)
	}

	if todo.Status != TodoStatusPending {
		t.Errorf("Expected status %s, got %s", TodoStatusPending, todo.Status)
	}

	if todo.Priority != 0 {
		t.Errorf("Expected priority 0, got %d", todo.Priority)
	}

	if todo.Description != nil || todo.DueDate != nil {
		t.Error("Expected description and due date to default to nil")
	}

	// Invalid owner
	if _, err := NewTodo(uuid.Nil, "buy milk"); err != ErrEmptyTodoUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTodoUserID, err)
	}

	// Invalid title
	if _, err := NewTodo(userID, ""); err != ErrEmptyTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}
}

func TestTodoValidate(t *testing.T) {
	t.Parallel()

	valid := Todo{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "buy milk",
		Status: TodoStatusPending,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(td *Todo)
		wantErr error
	}{
		{"empty ID", func(td *Todo) { td.ID = uuid.Nil }, ErrEmptyTodoID},
		{"empty user ID", func(td *Todo) { td.UserID = uuid.Nil }, ErrEmptyTodoUserID},
		{"empty title", func(td *Todo) { td.Title = "" }, ErrEmptyTitle},
		{"title too long", func(td *Todo) { td.Title = strings.Repeat("x", MaxTitleLength+1) }, ErrTitleTooLong},
		// Multibyte titles are bounded by character count, not byte count.
		{"multibyte title at limit", func(td *Todo) { td.Title = strings.Repeat("á", MaxTitleLength) }, nil},
		{"multibyte title over limit", func(td *Todo) { td.Title = strings.Repeat("á", MaxTitleLength+1) }, ErrTitleTooLong},
		{"bad status", func(td *Todo) { td.Status = "done" }, ErrInvalidStatus},
		{"priority below range", func(td *Todo) { td.Priority = -1 }, ErrPriorityOutOfRange},
		{"priority above range", func(td *Todo) { td.Priority = 11 }, ErrPriorityOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := valid
			tt.mutate(&td)
			if err := td.Validate(); err != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsValidTodoStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []TodoStatus{TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted} {
		if !IsValidTodoStatus(s) {
			t.Errorf("Expected %s to be valid", s)
		}
	}

	if IsValidTodoStatus("archived") {
		t.Error("Expected archived to be invalid")
	}
	if IsValidTodoStatus("") {
		t.Error("Expected empty status to be invalid")
	}
}
