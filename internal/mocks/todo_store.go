package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MockTodoStore implements store.TodoStore for testing
type MockTodoStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, todo *domain.Todo) error
	GetByIDFn               func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)
	ListFn                  func(ctx context.Context, ownerID uuid.UUID, filter store.TodoFilter) (*store.TodoPage, error)
	UpdateFn                func(ctx context.Context, todo *domain.Todo) error
	DeleteFn                func(ctx context.Context, ownerID, id uuid.UUID) error
	CountByOwnerFn          func(ctx context.Context, ownerID uuid.UUID) (int, error)
	CountByOwnerAndStatusFn func(ctx context.Context, ownerID uuid.UUID, status domain.TodoStatus) (int, error)

	// Data for default implementation, keyed by todo ID
	Todos map[uuid.UUID]*domain.Todo
}

// Ensure MockTodoStore implements store.TodoStore
var _ store.TodoStore = (*MockTodoStore)(nil)

// NewMockTodoStore creates a new mock store with initialized defaults
func NewMockTodoStore() *MockTodoStore {
	return &MockTodoStore{
		Todos: make(map[uuid.UUID]*domain.Todo),
	}
}

// Create implements the TodoStore interface
func (m *MockTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, todo)
	}

	copied := *todo
	m.Todos[todo.ID] = &copied
	return nil
}

// GetByID implements the TodoStore interface
func (m *MockTodoStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	todo, exists := m.Todos[id]
	if !exists || todo.UserID != ownerID {
		return nil, store.ErrTodoNotFound
	}

	copied := *todo
	return &copied, nil
}

// List implements the TodoStore interface
func (m *MockTodoStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.TodoFilter,
) (*store.TodoPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, filter)
	}

	filter.Normalize()

	matching := m.ownedTodos(ownerID, filter.Status)
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	total := len(matching)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + filter.Limit - 1) / filter.Limit
	}

	return &store.TodoPage{
		Todos:      matching[start:end],
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages,
	}, nil
}

// Update implements the TodoStore interface
func (m *MockTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, todo)
	}

	existing, exists := m.Todos[todo.ID]
	if !exists || existing.UserID != todo.UserID {
		return store.ErrTodoNotFound
	}

	copied := *todo
	m.Todos[todo.ID] = &copied
	return nil
}

// Delete implements the TodoStore interface
func (m *MockTodoStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	todo, exists := m.Todos[id]
	if !exists || todo.UserID != ownerID {
		return store.ErrTodoNotFound
	}

	delete(m.Todos, id)
	return nil
}

// CountByOwner implements the TodoStore interface
func (m *MockTodoStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if m.CountByOwnerFn != nil {
		return m.CountByOwnerFn(ctx, ownerID)
	}
	return len(m.ownedTodos(ownerID, nil)), nil
}

// CountByOwnerAndStatus implements the TodoStore interface
func (m *MockTodoStore) CountByOwnerAndStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status domain.TodoStatus,
) (int, error) {
	if m.CountByOwnerAndStatusFn != nil {
		return m.CountByOwnerAndStatusFn(ctx, ownerID, status)
	}
	return len(m.ownedTodos(ownerID, &status)), nil
}

// ownedTodos collects the owner's todos, optionally filtered by status.
func (m *MockTodoStore) ownedTodos(ownerID uuid.UUID, status *domain.TodoStatus) []*domain.Todo {
	var result []*domain.Todo
	for _, todo := range m.Todos {
		if todo.UserID != ownerID {
			continue
		}
		if status != nil && todo.Status != *status {
			continue
		}
		copied := *todo
		result = append(result, &copied)
	}
	return result
}
