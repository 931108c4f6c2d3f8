package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	validator   *validator.Validate
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		validator:   validator.New(),
	}
}

// Create handles POST /api/todos requests
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, nil)
	if !ok {
		return
	}

	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	input := service.TodoCreate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    req.Priority,
	}
	if req.Status != nil {
		status := domain.TodoStatus(*req.Status)
		input.Status = &status
	}

	todo, err := h.todoService.Create(r.Context(), userID, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, todo)
}

// List handles GET /api/todos requests. Supported query parameters are
// status, page, and limit.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, nil)
	if !ok {
		return
	}

	filter := store.TodoFilter{}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TodoStatus(raw)
		if !domain.IsValidTodoStatus(status) {
			HandleAPIError(w, r, domain.ErrInvalidStatus, "")
			return
		}
		filter.Status = &status
	}

	page, err := getQueryInt(r, "page", store.DefaultPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	filter.Page = page

	limit, err := getQueryInt(r, "limit", store.DefaultLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	filter.Limit = limit

	result, err := h.todoService.List(r.Context(), userID, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTodoListResponse(result))
}

// Statistics handles GET /api/todos/statistics requests
func (h *TodoHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := handleUserIDFromContext(w, r, nil)
	if !ok {
		return
	}

	stats, err := h.todoService.Statistics(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetByID handles GET /api/todos/{id} requests
func (h *TodoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	todo, err := h.todoService.GetByID(r.Context(), userID, todoID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// Update handles PUT /api/todos/{id} requests
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	input := service.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    req.Priority,
	}
	if req.Status != nil {
		status := domain.TodoStatus(*req.Status)
		input.Status = &status
	}

	todo, err := h.todoService.Update(r.Context(), userID, todoID, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/{id} requests
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, todoID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if _, err := h.todoService.Delete(r.Context(), userID, todoID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Todo deleted successfully",
	})
}
