package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// todoColumns is the column list shared by every todo SELECT.
const todoColumns = `id, user_id, title, description, status, due_date, priority, created_at, updated_at`

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the
// TodoStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTodoStore(db store.DBTX, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// Create implements store.TodoStore.Create
// It saves a new todo to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the owning user does not exist
// (foreign key violation).
func (s *PostgresTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during create",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return err
	}

	query := `
		INSERT INTO todos (id, user_id, title, description, status, due_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.DueDate,
		todo.Priority,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during todo creation",
				slog.String("todo_id", todo.ID.String()),
				slog.String("user_id", todo.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, todo.UserID)
		}

		log.Error("failed to create todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()),
			slog.String("user_id", todo.UserID.String()))
		return MapError(err)
	}

	log.Info("todo created successfully",
		slog.String("todo_id", todo.ID.String()),
		slog.String("user_id", todo.UserID.String()),
		slog.String("status", string(todo.Status)))
	return nil
}

// GetByID implements store.TodoStore.GetByID
// The query matches both id and owner, so a todo owned by another user is
// reported as store.ErrTodoNotFound.
func (s *PostgresTodoStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	todo, err := scanTodo(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found",
				slog.String("todo_id", id.String()),
				slog.String("user_id", ownerID.String()))
			return nil, store.ErrTodoNotFound
		}
		log.Error("failed to get todo by ID",
			slog.String("error", err.Error()),
			slog.String("todo_id", id.String()))
		return nil, MapError(err)
	}

	return todo, nil
}

// List implements store.TodoStore.List
// Results are ordered by creation time descending. The total count uses the
// same predicate so the page arithmetic stays consistent with the rows.
func (s *PostgresTodoStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.TodoFilter,
) (*store.TodoPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	filter.Normalize()

	where := `WHERE user_id = $1`
	args := []any{ownerID}
	if filter.Status != nil {
		where += ` AND status = $2`
		args = append(args, *filter.Status)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM todos ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count todos",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}

	listQuery := fmt.Sprintf(`
		SELECT `+todoColumns+`
		FROM todos
		%s
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d
	`, where, filter.Limit, filter.Offset())

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list todos",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]*domain.Todo, 0, filter.Limit)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			log.Error("failed to scan todo row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return &store.TodoPage{
		Todos:      todos,
		Total:      total,
		Page:       filter.Page,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Update implements store.TodoStore.Update
// The WHERE clause matches both id and owner; updating another user's todo
// affects zero rows and surfaces as store.ErrTodoNotFound.
func (s *PostgresTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := todo.Validate(); err != nil {
		log.Warn("todo validation failed during update",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return err
	}

	query := `
		UPDATE todos
		SET title = $1, description = $2, status = $3, due_date = $4, priority = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		todo.Title,
		todo.Description,
		todo.Status,
		todo.DueDate,
		todo.Priority,
		todo.UpdatedAt,
		todo.ID,
		todo.UserID,
	)
	if err != nil {
		log.Error("failed to update todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", todo.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTodoNotFound); err != nil {
		log.Debug("todo not found during update",
			slog.String("todo_id", todo.ID.String()),
			slog.String("user_id", todo.UserID.String()))
		return err
	}

	log.Info("todo updated successfully",
		slog.String("todo_id", todo.ID.String()))
	return nil
}

// Delete implements store.TodoStore.Delete
// Deletion is a single statement conditioned on id AND owner, so there is no
// window between an ownership check and the removal.
func (s *PostgresTodoStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete todo",
			slog.String("error", err.Error()),
			slog.String("todo_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTodoNotFound); err != nil {
		log.Debug("todo not found during delete",
			slog.String("todo_id", id.String()),
			slog.String("user_id", ownerID.String()))
		return err
	}

	log.Info("todo deleted successfully",
		slog.String("todo_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

// CountByOwner implements store.TodoStore.CountByOwner
func (s *PostgresTodoStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM todos WHERE user_id = $1`
	if err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// CountByOwnerAndStatus implements store.TodoStore.CountByOwnerAndStatus
func (s *PostgresTodoStore) CountByOwnerAndStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	status domain.TodoStatus,
) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM todos WHERE user_id = $1 AND status = $2`
	if err := s.db.QueryRowContext(ctx, query, ownerID, status).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// totalPages derives the page count: ceil(total/limit), zero when empty.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo reads one todo row into a domain.Todo.
func scanTodo(row rowScanner) (*domain.Todo, error) {
	var todo domain.Todo
	var status string
	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&todo.Description,
		&status,
		&todo.DueDate,
		&todo.Priority,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	todo.Status = domain.TodoStatus(status)
	return &todo, nil
}
