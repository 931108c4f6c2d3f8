package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

func statusPtr(s domain.TodoStatus) *domain.TodoStatus { return &s }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestTodoServiceCreate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("create with title only applies defaults", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		svc := service.NewTodoService(todoStore, discardLogger())

		todo, err := svc.Create(context.Background(), ownerID, service.TodoCreate{Title: "Buy milk"})
		require.NoError(t, err)

		assert.Equal(t, "Buy milk", todo.Title)
		assert.Equal(t, ownerID, todo.UserID)
		assert.Equal(t, domain.TodoStatusPending, todo.Status)
		assert.Equal(t, domain.MinPriority, todo.Priority)
		assert.Nil(t, todo.Description)
		assert.Nil(t, todo.DueDate)

		_, ok := todoStore.Todos[todo.ID]
		assert.True(t, ok, "todo should have been saved")
	})

	t.Run("optional fields override the defaults", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(mocks.NewMockTodoStore(), discardLogger())

		due := time.Now().UTC().Add(48 * time.Hour)
		todo, err := svc.Create(context.Background(), ownerID, service.TodoCreate{
			Title:       "Prepare talk",
			Description: strPtr("slides and demo"),
			Status:      statusPtr(domain.TodoStatusInProgress),
			DueDate:     &due,
			Priority:    intPtr(7),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TodoStatusInProgress, todo.Status)
		assert.Equal(t, 7, todo.Priority)
		require.NotNil(t, todo.Description)
		assert.Equal(t, "slides and demo", *todo.Description)
		require.NotNil(t, todo.DueDate)
		assert.True(t, todo.DueDate.Equal(due))
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(mocks.NewMockTodoStore(), discardLogger())

		tests := []struct {
			name    string
			input   service.TodoCreate
			wantErr error
		}{
			{
				name:    "empty title",
				input:   service.TodoCreate{Title: ""},
				wantErr: domain.ErrEmptyTitle,
			},
			{
				name:    "priority above the maximum",
				input:   service.TodoCreate{Title: "ok", Priority: intPtr(domain.MaxPriority + 1)},
				wantErr: domain.ErrPriorityOutOfRange,
			},
			{
				name:    "unknown status",
				input:   service.TodoCreate{Title: "ok", Status: statusPtr("archived")},
				wantErr: domain.ErrInvalidStatus,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Create(context.Background(), ownerID, tc.input)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestTodoServiceList(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	otherID := uuid.New()

	seed := func(t *testing.T) *mocks.MockTodoStore {
		t.Helper()
		todoStore := mocks.NewMockTodoStore()
		base := time.Now().UTC()
		for i := 0; i < 15; i++ {
			todo, err := domain.NewTodo(ownerID, "task")
			require.NoError(t, err)
			todo.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			if i%3 == 0 {
				todo.Status = domain.TodoStatusCompleted
			}
			todoStore.Todos[todo.ID] = todo
		}
		intruder, err := domain.NewTodo(otherID, "not yours")
		require.NoError(t, err)
		todoStore.Todos[intruder.ID] = intruder
		return todoStore
	}

	t.Run("defaults to first page of ten, newest first", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(seed(t), discardLogger())

		page, err := svc.List(context.Background(), ownerID, store.TodoFilter{})
		require.NoError(t, err)

		assert.Len(t, page.Todos, 10)
		assert.Equal(t, 15, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.TotalPages)
		for i := 1; i < len(page.Todos); i++ {
			assert.False(t, page.Todos[i].CreatedAt.After(page.Todos[i-1].CreatedAt),
				"todos should be ordered newest first")
		}
		for _, todo := range page.Todos {
			assert.Equal(t, ownerID, todo.UserID)
		}
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(seed(t), discardLogger())

		page, err := svc.List(context.Background(), ownerID, store.TodoFilter{Page: 2})
		require.NoError(t, err)

		assert.Len(t, page.Todos, 5)
		assert.Equal(t, 2, page.Page)
	})

	t.Run("status filter narrows the result and the total", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(seed(t), discardLogger())

		page, err := svc.List(context.Background(), ownerID, store.TodoFilter{
			Status: statusPtr(domain.TodoStatusCompleted),
		})
		require.NoError(t, err)

		assert.Equal(t, 5, page.Total)
		for _, todo := range page.Todos {
			assert.Equal(t, domain.TodoStatusCompleted, todo.Status)
		}
	})

	t.Run("page past the end is empty but well formed", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(seed(t), discardLogger())

		page, err := svc.List(context.Background(), ownerID, store.TodoFilter{Page: 99})
		require.NoError(t, err)

		assert.Empty(t, page.Todos)
		assert.Equal(t, 15, page.Total)
		assert.Equal(t, 99, page.Page)
	})
}

func TestTodoServiceGetByID(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("owner retrieves their todo", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		todo, err := domain.NewTodo(ownerID, "mine")
		require.NoError(t, err)
		todoStore.Todos[todo.ID] = todo

		svc := service.NewTodoService(todoStore, discardLogger())

		got, err := svc.GetByID(context.Background(), ownerID, todo.ID)
		require.NoError(t, err)
		assert.Equal(t, todo.ID, got.ID)
	})

	t.Run("another user's todo reads as not found", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		todo, err := domain.NewTodo(ownerID, "mine")
		require.NoError(t, err)
		todoStore.Todos[todo.ID] = todo

		svc := service.NewTodoService(todoStore, discardLogger())

		_, err = svc.GetByID(context.Background(), uuid.New(), todo.ID)
		assert.ErrorIs(t, err, store.ErrTodoNotFound)
	})
}

func TestTodoServiceUpdate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	newStoredTodo := func(t *testing.T) (*mocks.MockTodoStore, *domain.Todo) {
		t.Helper()
		todoStore := mocks.NewMockTodoStore()
		todo, err := domain.NewTodo(ownerID, "original title")
		require.NoError(t, err)
		todo.Description = strPtr("original description")
		todo.Priority = 3
		todoStore.Todos[todo.ID] = todo
		return todoStore, todo
	}

	t.Run("partial update keeps unmentioned fields", func(t *testing.T) {
		t.Parallel()

		todoStore, todo := newStoredTodo(t)
		svc := service.NewTodoService(todoStore, discardLogger())

		updated, err := svc.Update(context.Background(), ownerID, todo.ID, service.TodoUpdate{
			Status: statusPtr(domain.TodoStatusCompleted),
		})
		require.NoError(t, err)

		assert.Equal(t, domain.TodoStatusCompleted, updated.Status)
		assert.Equal(t, "original title", updated.Title)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "original description", *updated.Description)
		assert.Equal(t, 3, updated.Priority)
		assert.False(t, updated.UpdatedAt.Before(todo.UpdatedAt))
	})

	t.Run("full update replaces every provided field", func(t *testing.T) {
		t.Parallel()

		todoStore, todo := newStoredTodo(t)
		svc := service.NewTodoService(todoStore, discardLogger())

		due := time.Now().UTC().Add(time.Hour)
		updated, err := svc.Update(context.Background(), ownerID, todo.ID, service.TodoUpdate{
			Title:       strPtr("new title"),
			Description: strPtr("new description"),
			Status:      statusPtr(domain.TodoStatusInProgress),
			DueDate:     &due,
			Priority:    intPtr(9),
		})
		require.NoError(t, err)

		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, domain.TodoStatusInProgress, updated.Status)
		assert.Equal(t, 9, updated.Priority)
		require.NotNil(t, updated.DueDate)
	})

	t.Run("invalid merge result is rejected without saving", func(t *testing.T) {
		t.Parallel()

		todoStore, todo := newStoredTodo(t)
		svc := service.NewTodoService(todoStore, discardLogger())

		_, err := svc.Update(context.Background(), ownerID, todo.ID, service.TodoUpdate{
			Priority: intPtr(domain.MaxPriority + 1),
		})
		assert.ErrorIs(t, err, domain.ErrPriorityOutOfRange)

		stored := todoStore.Todos[todo.ID]
		assert.Equal(t, 3, stored.Priority, "invalid update must not be persisted")
	})

	t.Run("updating another user's todo reads as not found", func(t *testing.T) {
		t.Parallel()

		todoStore, todo := newStoredTodo(t)
		svc := service.NewTodoService(todoStore, discardLogger())

		_, err := svc.Update(context.Background(), uuid.New(), todo.ID, service.TodoUpdate{
			Title: strPtr("hijacked"),
		})
		assert.ErrorIs(t, err, store.ErrTodoNotFound)
	})
}

func TestTodoServiceDelete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("delete removes the todo exactly once", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		todo, err := domain.NewTodo(ownerID, "to be removed")
		require.NoError(t, err)
		todoStore.Todos[todo.ID] = todo

		svc := service.NewTodoService(todoStore, discardLogger())

		deleted, err := svc.Delete(context.Background(), ownerID, todo.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = svc.Delete(context.Background(), ownerID, todo.ID)
		assert.ErrorIs(t, err, store.ErrTodoNotFound)
		assert.False(t, deleted)
	})

	t.Run("deleting another user's todo reads as not found", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		todo, err := domain.NewTodo(ownerID, "keep out")
		require.NoError(t, err)
		todoStore.Todos[todo.ID] = todo

		svc := service.NewTodoService(todoStore, discardLogger())

		deleted, err := svc.Delete(context.Background(), uuid.New(), todo.ID)
		assert.ErrorIs(t, err, store.ErrTodoNotFound)
		assert.False(t, deleted)

		_, still := todoStore.Todos[todo.ID]
		assert.True(t, still, "todo must survive a non-owner delete attempt")
	})
}

func TestTodoServiceStatistics(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("counts per status for the owner only", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		add := func(owner uuid.UUID, status domain.TodoStatus, n int) {
			for i := 0; i < n; i++ {
				todo, err := domain.NewTodo(owner, "task")
				require.NoError(t, err)
				todo.Status = status
				todoStore.Todos[todo.ID] = todo
			}
		}
		add(ownerID, domain.TodoStatusPending, 4)
		add(ownerID, domain.TodoStatusInProgress, 2)
		add(ownerID, domain.TodoStatusCompleted, 3)
		add(uuid.New(), domain.TodoStatusPending, 5)

		svc := service.NewTodoService(todoStore, discardLogger())

		stats, err := svc.Statistics(context.Background(), ownerID)
		require.NoError(t, err)

		assert.Equal(t, 9, stats.Total)
		assert.Equal(t, 4, stats.Pending)
		assert.Equal(t, 2, stats.InProgress)
		assert.Equal(t, 3, stats.Completed)
	})

	t.Run("empty list yields all zeroes", func(t *testing.T) {
		t.Parallel()

		svc := service.NewTodoService(mocks.NewMockTodoStore(), discardLogger())

		stats, err := svc.Statistics(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, &store.TodoStatistics{}, stats)
	})

	t.Run("any failed count fails the whole computation", func(t *testing.T) {
		t.Parallel()

		todoStore := mocks.NewMockTodoStore()
		countErr := errors.New("count query failed")
		todoStore.CountByOwnerAndStatusFn = func(
			ctx context.Context,
			ownerID uuid.UUID,
			status domain.TodoStatus,
		) (int, error) {
			if status == domain.TodoStatusInProgress {
				return 0, countErr
			}
			return 0, nil
		}

		svc := service.NewTodoService(todoStore, discardLogger())

		stats, err := svc.Statistics(context.Background(), ownerID)
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, countErr)
	})
}
