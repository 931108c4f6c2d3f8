package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoCreate carries the fields for creating a todo. Optional fields are
// pointers; nil means "not provided" and the domain default applies.
type TodoCreate struct {
	Title       string
	Description *string
	Status      *domain.TodoStatus
	DueDate     *time.Time
	Priority    *int
}

// TodoUpdate carries a partial update. Only non-nil fields overwrite the
// stored value; everything left nil retains its prior value.
type TodoUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
	DueDate     *time.Time
	Priority    *int
}

// TodoService provides owner-scoped todo operations. Every method takes the
// authenticated caller's ID explicitly; a todo belonging to another user is
// indistinguishable from a missing one.
type TodoService interface {
	// Create stores a new todo owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input TodoCreate) (*domain.Todo, error)

	// List returns one page of the owner's todos, newest first.
	List(ctx context.Context, ownerID uuid.UUID, filter store.TodoFilter) (*store.TodoPage, error)

	// GetByID returns the owner's todo or store.ErrTodoNotFound.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)

	// Update applies a partial merge to the owner's todo and returns the
	// updated record, or store.ErrTodoNotFound.
	Update(ctx context.Context, ownerID, id uuid.UUID, input TodoUpdate) (*domain.Todo, error)

	// Delete removes the owner's todo. Returns true when a row was
	// actually removed, false with store.ErrTodoNotFound otherwise.
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)

	// Statistics returns total and per-status counts for the owner.
	Statistics(ctx context.Context, ownerID uuid.UUID) (*store.TodoStatistics, error)
}

// TodoServiceImpl implements the TodoService interface
type TodoServiceImpl struct {
	todoStore store.TodoStore
	logger    *slog.Logger
}

// NewTodoService creates a new TodoService
func NewTodoService(todoStore store.TodoStore, logger *slog.Logger) TodoService {
	return &TodoServiceImpl{
		todoStore: todoStore,
		logger:    logger.With("component", "todo_service"),
	}
}

// Create builds the domain todo, applies any provided optional fields over
// the defaults, and persists it.
func (s *TodoServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input TodoCreate,
) (*domain.Todo, error) {
	todo, err := domain.NewTodo(ownerID, input.Title)
	if err != nil {
		s.logger.Debug("invalid todo data", "error", err, "user_id", ownerID)
		return nil, err
	}

	todo.Description = input.Description
	todo.DueDate = input.DueDate
	if input.Status != nil {
		todo.Status = *input.Status
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}

	if err := todo.Validate(); err != nil {
		s.logger.Debug("invalid todo data", "error", err, "user_id", ownerID)
		return nil, err
	}

	if err := s.todoStore.Create(ctx, todo); err != nil {
		s.logger.Error("failed to create todo", "error", err, "user_id", ownerID)
		return nil, err
	}

	return todo, nil
}

// List returns one page of the owner's todos.
func (s *TodoServiceImpl) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.TodoFilter,
) (*store.TodoPage, error) {
	page, err := s.todoStore.List(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("failed to list todos", "error", err, "user_id", ownerID)
		return nil, err
	}
	return page, nil
}

// GetByID returns the owner's todo.
func (s *TodoServiceImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, ownerID, id)
	if err != nil {
		if !errors.Is(err, store.ErrTodoNotFound) {
			s.logger.Error("failed to get todo", "error", err, "todo_id", id)
		}
		return nil, err
	}
	return todo, nil
}

// Update fetches the owner's todo, merges the provided fields over it, and
// saves the result. The fetch-merge-save sequence is not guarded against a
// concurrent writer; the last write wins.
func (s *TodoServiceImpl) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input TodoUpdate,
) (*domain.Todo, error) {
	todo, err := s.todoStore.GetByID(ctx, ownerID, id)
	if err != nil {
		if !errors.Is(err, store.ErrTodoNotFound) {
			s.logger.Error("failed to fetch todo for update", "error", err, "todo_id", id)
		}
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = input.Description
	}
	if input.Status != nil {
		todo.Status = *input.Status
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	todo.Touch()

	if err := todo.Validate(); err != nil {
		s.logger.Debug("invalid todo update", "error", err, "todo_id", id)
		return nil, err
	}

	if err := s.todoStore.Update(ctx, todo); err != nil {
		if !errors.Is(err, store.ErrTodoNotFound) {
			s.logger.Error("failed to update todo", "error", err, "todo_id", id)
		}
		return nil, err
	}

	return todo, nil
}

// Delete removes the owner's todo in a single owner-scoped statement.
func (s *TodoServiceImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	if err := s.todoStore.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			return false, err
		}
		s.logger.Error("failed to delete todo", "error", err, "todo_id", id)
		return false, err
	}
	return true, nil
}

// Statistics issues the total and the three per-status counts concurrently;
// they are independent reads and need no shared transaction.
func (s *TodoServiceImpl) Statistics(
	ctx context.Context,
	ownerID uuid.UUID,
) (*store.TodoStatistics, error) {
	counts := make([]int, 4)
	errs := make([]error, 4)

	jobs := []func(ctx context.Context) (int, error){
		func(ctx context.Context) (int, error) {
			return s.todoStore.CountByOwner(ctx, ownerID)
		},
		func(ctx context.Context) (int, error) {
			return s.todoStore.CountByOwnerAndStatus(ctx, ownerID, domain.TodoStatusPending)
		},
		func(ctx context.Context) (int, error) {
			return s.todoStore.CountByOwnerAndStatus(ctx, ownerID, domain.TodoStatusInProgress)
		},
		func(ctx context.Context) (int, error) {
			return s.todoStore.CountByOwnerAndStatus(ctx, ownerID, domain.TodoStatusCompleted)
		},
	}

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job func(ctx context.Context) (int, error)) {
			defer wg.Done()
			counts[i], errs[i] = job(ctx)
		}(i, job)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Error("failed to compute todo statistics", "error", err, "user_id", ownerID)
			return nil, fmt.Errorf("failed to compute statistics: %w", err)
		}
	}

	return &store.TodoStatistics{
		Total:      counts[0],
		Pending:    counts[1],
		InProgress: counts[2],
		Completed:  counts[3],
	}, nil
}
