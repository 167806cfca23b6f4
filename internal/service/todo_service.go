package service

import (
	"context"
	"time"

	"github.com/Tomlord1122/activity-todo-backend/internal/domain"
	"github.com/Tomlord1122/activity-todo-backend/internal/field"
	"github.com/Tomlord1122/activity-todo-backend/internal/repository"
)

// CreateTodoRequest holds the data needed to create a new todo.
// Nil Priority and IsActive take domain.DefaultPriority and
// domain.DefaultIsActive.
type CreateTodoRequest struct {
	Title           field.Title
	ActivityGroupID uint
	Priority        *string
	IsActive        *bool
}

// UpdateTodoRequest holds the data for updating an existing todo.
// Using pointers allows distinguishing between a field being omitted
// vs. being set to its zero value (e.g., setting IsActive to false).
type UpdateTodoRequest struct {
	Title           *string
	ActivityGroupID *uint
	IsActive        *bool
	Priority        *string
}

// TodoResponse is the standard representation of a Todo returned by the service.
type TodoResponse struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	ActivityGroupID uint       `json:"activity_group_id"`
	IsActive        bool       `json:"is_active"`
	Priority        string     `json:"priority"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

// TodoService defines the operations for managing todos.
type TodoService interface {
	// ListTodos returns all todos, or only those of one activity group when
	// activityGroupID is non-nil.
	ListTodos(ctx context.Context, activityGroupID *uint) ([]TodoResponse, error)

	// CreateTodo does not check that the referenced activity group exists.
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error)

	GetTodo(ctx context.Context, id uint) (*TodoResponse, error)

	// UpdateTodo writes only the supplied fields, always refreshes
	// updatedAt, and does so atomically.
	UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error)

	DeleteTodo(ctx context.Context, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
	now  func() time.Time
}

// NewTodoService creates a new instance of todoService.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{
		repo: repo,
		now:  clock,
	}
}

func (s *todoService) ListTodos(ctx context.Context, activityGroupID *uint) ([]TodoResponse, error) {
	todos, err := s.repo.FindAll(ctx, activityGroupID)
	if err != nil {
		return nil, wrap(err, "failed to retrieve todo items")
	}

	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, toTodoResponse(&todos[i]))
	}
	return responses, nil
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error) {
	if req.Title.IsZero() {
		return nil, ErrInvalidTitle
	}

	priority := domain.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	isActive := domain.DefaultIsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	todo := &domain.Todo{
		Title:           req.Title.String(),
		ActivityGroupID: req.ActivityGroupID,
		IsActive:        isActive,
		Priority:        priority,
		CreatedAt:       now,
		UpdatedAt:       &now,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, wrap(err, "failed to create todo item")
	}

	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) GetTodo(ctx context.Context, id uint) (*TodoResponse, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "todo with ID %d", id)
	}

	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error) {
	todo, err := s.repo.Update(ctx, id, repository.TodoChanges{
		Title:           req.Title,
		ActivityGroupID: req.ActivityGroupID,
		IsActive:        req.IsActive,
		Priority:        req.Priority,
		UpdatedAt:       s.now(),
	})
	if err != nil {
		return nil, wrap(err, "failed to update todo with ID %d", id)
	}

	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return wrap(err, "todo with ID %d", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap(err, "failed to delete todo with ID %d", id)
	}
	return nil
}

func toTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:              t.ID,
		Title:           t.Title,
		ActivityGroupID: t.ActivityGroupID,
		IsActive:        t.IsActive,
		Priority:        t.Priority,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
