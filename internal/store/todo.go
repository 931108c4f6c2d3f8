package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// Pagination defaults and bounds for TodoFilter.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// TodoFilter narrows and windows a todo listing. A nil Status means no
// status filtering. Page and Limit are normalized by Normalize before use.
type TodoFilter struct {
	Status *domain.TodoStatus
	Page   int
	Limit  int
}

// Normalize clamps the filter to valid pagination bounds, applying the
// defaults for unset (zero) values.
func (f *TodoFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (f *TodoFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TodoPage is one window of a paginated todo listing.
type TodoPage struct {
	Todos      []*domain.Todo
	Total      int
	Page       int
	TotalPages int
}

// TodoStatistics aggregates per-status counts for one owner's todos.
type TodoStatistics struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// TodoStore defines the interface for todo data persistence. Every read and
// write is scoped to an owning user; a todo owned by someone else behaves
// exactly like a missing one.
type TodoStore interface {
	// Create saves a new todo to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Todo if data is invalid.
	Create(ctx context.Context, todo *domain.Todo) error

	// GetByID retrieves a todo by ID, scoped to the given owner.
	// Returns ErrTodoNotFound if the todo does not exist or is owned by
	// another user.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)

	// List returns one page of the owner's todos, newest first, optionally
	// filtered by status. The returned page carries the total match count
	// and the derived total page count.
	List(ctx context.Context, ownerID uuid.UUID, filter TodoFilter) (*TodoPage, error)

	// Update persists the full current state of the todo, scoped to its
	// owner. Returns ErrTodoNotFound if no owned row matched.
	Update(ctx context.Context, todo *domain.Todo) error

	// Delete removes the todo matching both id and owner in one atomic
	// condition. Returns ErrTodoNotFound if no owned row matched.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// CountByOwner returns how many todos the owner has in total.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)

	// CountByOwnerAndStatus returns how many of the owner's todos carry
	// the given status.
	CountByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status domain.TodoStatus) (int, error)
}
