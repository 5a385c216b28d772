package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prasetia/todo-auth-backend/internal/domain"
	"github.com/prasetia/todo-auth-backend/internal/repository"

	"gorm.io/gorm"
)

// CreateTodoRequest holds the data needed to create a new todo. Neither
// field is validated for emptiness; whatever the client sends is persisted
// as given.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	Deskripsi string `json:"deskripsi"`
}

// UpdateTodoRequest holds the data for updating an existing todo.
// Pointers distinguish a field being omitted from one set to its zero value.
type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Deskripsi *string `json:"deskripsi"`
}

// TodoResponse is the representation of a Todo returned by the service.
type TodoResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Deskripsi string `json:"deskripsi"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TodoService defines the operations for managing todos.
type TodoService interface {
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error)
	GetTodoByID(ctx context.Context, id uint) (*TodoResponse, error)
	GetAllTodos(ctx context.Context) ([]TodoResponse, error)

	// SearchTodos returns the todos whose title or description contains q,
	// case-insensitively.
	SearchTodos(ctx context.Context, q string) ([]TodoResponse, error)

	UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error)
	DeleteTodo(ctx context.Context, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new todo service backed by the given repository.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func todoToResponse(t *domain.Todo) *TodoResponse {
	return &TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Deskripsi: t.Deskripsi,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*TodoResponse, error) {
	newTodo := &domain.Todo{
		Title:     req.Title,
		Deskripsi: req.Deskripsi,
	}

	if err := s.repo.Create(newTodo); err != nil {
		log.Printf("Error creating todo in repository: %v", err)
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todoToResponse(newTodo), nil
}

func (s *todoService) GetTodoByID(ctx context.Context, id uint) (*TodoResponse, error) {
	todo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d from repository: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve todo: %w", err)
	}
	return todoToResponse(todo), nil
}

func (s *todoService) GetAllTodos(ctx context.Context) ([]TodoResponse, error) {
	todos, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Error fetching all todos from repository: %v", err)
		return nil, fmt.Errorf("failed to retrieve todos: %w", err)
	}

	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, *todoToResponse(&todos[i]))
	}
	return responses, nil
}

func (s *todoService) SearchTodos(ctx context.Context, q string) ([]TodoResponse, error) {
	todos, err := s.repo.Search(q)
	if err != nil {
		log.Printf("Error searching todos for %q: %v", q, err)
		return nil, fmt.Errorf("failed to search todos: %w", err)
	}

	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, *todoToResponse(&todos[i]))
	}
	return responses, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) (*TodoResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		log.Printf("Error fetching todo %d for update: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve todo for update: %w", err)
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Deskripsi != nil {
		existing.Deskripsi = *req.Deskripsi
	}

	if err := s.repo.Update(existing); err != nil {
		log.Printf("Error updating todo %d in repository: %v", id, err)
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todoToResponse(existing), nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id uint) error {
	// Check existence first so callers get a clean not-found instead of a
	// silent no-op delete.
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		log.Printf("Error checking existence of todo %d before delete: %v", id, err)
		return fmt.Errorf("failed to check todo before deletion: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("Error deleting todo %d from repository: %v", id, err)
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
