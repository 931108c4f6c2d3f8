package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"required,min=2"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the client-facing view of a user. It never carries
// password material.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse converts a domain user to its client-facing form.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// CreateTodoRequest defines the payload for creating a todo. DueDate is an
// RFC 3339 timestamp string.
type CreateTodoRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string `json:"dueDate"     validate:"omitempty"`
	Priority    *int    `json:"priority"    validate:"omitempty,min=0,max=10"`
}

// UpdateTodoRequest defines the payload for a partial todo update. Absent
// fields keep their stored values.
type UpdateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string `json:"dueDate"     validate:"omitempty"`
	Priority    *int    `json:"priority"    validate:"omitempty,min=0,max=10"`
}

// TodoListResponse defines the paginated todo listing payload.
type TodoListResponse struct {
	Todos      []*domain.Todo `json:"todos"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// NewTodoListResponse converts a store page to its client-facing form.
func NewTodoListResponse(page *store.TodoPage) TodoListResponse {
	todos := page.Todos
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return TodoListResponse{
		Todos:      todos,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
