package repository

import (
	"github.com/prasetia/todo-auth-backend/internal/domain"

	"gorm.io/gorm"
)

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	Create(todo *domain.Todo) error
	FindByID(id uint) (*domain.Todo, error)
	GetAll() ([]domain.Todo, error)
	Search(q string) ([]domain.Todo, error)
	Update(todo *domain.Todo) error
	Delete(id uint) error
}

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	result := r.db.Create(todo)
	return result.Error
}

func (r *gormTodoRepository) FindByID(id uint) (*domain.Todo, error) {
	var todo domain.Todo
	result := r.db.First(&todo, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &todo, nil
}

func (r *gormTodoRepository) GetAll() ([]domain.Todo, error) {
	var todos []domain.Todo
	result := r.db.Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// Search matches q as a case-insensitive substring of either the title or
// the description.
func (r *gormTodoRepository) Search(q string) ([]domain.Todo, error) {
	var todos []domain.Todo
	pattern := "%" + q + "%"
	result := r.db.Where("title ILIKE ? OR deskripsi ILIKE ?", pattern, pattern).Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

func (r *gormTodoRepository) Update(todo *domain.Todo) error {
	result := r.db.Save(todo)
	return result.Error
}

// Delete removes the row permanently. Unscoped skips GORM's soft delete so a
// deleted id reads back as not found rather than lingering in the table.
func (r *gormTodoRepository) Delete(id uint) error {
	result := r.db.Unscoped().Delete(&domain.Todo{}, id)
	return result.Error
}
