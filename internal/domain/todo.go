package domain

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TodoStatus represents the completion state of a todo
type TodoStatus string

// Possible todo status values
const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
)

// Priority bounds for a todo
const (
	MinPriority = 0
	MaxPriority = 10
)

// MaxTitleLength is the longest allowed todo title.
const MaxTitleLength = 200

// Common validation errors for Todo
var (
	ErrEmptyTodoID        = errors.New("todo ID cannot be empty")
	ErrEmptyTodoUserID    = errors.New("todo user ID cannot be empty")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title cannot exceed 200 characters")
	ErrInvalidStatus      = errors.New("invalid todo status")
	ErrPriorityOutOfRange = errors.New("priority must be between 0 and 10")
)

// Todo represents a single unit of work owned by exactly one user.
// Description and DueDate are optional; a nil DueDate means no deadline.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      TodoStatus `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTodo creates a new Todo owned by the given user. It generates a new
// UUID, defaults the status to pending and the priority to zero, and sets
// the creation/update timestamps.
// Returns an error if validation fails.
func NewTodo(userID uuid.UUID, title string) (*Todo, error) {
	now := time.Now().UTC()
	todo := &Todo{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Status:    TodoStatusPending,
		Priority:  MinPriority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	return todo, nil
}

// Validate checks if the Todo has valid data.
// Returns an error if any field fails validation.
func (t *Todo) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTodoID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTodoUserID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}
	// The bound counts characters, not bytes, matching the VARCHAR(200)
	// column.
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if !IsValidTodoStatus(t.Status) {
		return ErrInvalidStatus
	}

	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return ErrPriorityOutOfRange
	}

	return nil
}

// Touch refreshes the UpdatedAt timestamp after a mutation.
func (t *Todo) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// IsValidTodoStatus checks if the given status is a valid TodoStatus.
func IsValidTodoStatus(status TodoStatus) bool {
	switch status {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	default:
		return false
	}
}
