package repository

import (
	"github.com/prasetia/todo-auth-backend/internal/domain"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations. Email
// uniqueness is not checked here: the column carries a unique index and a
// duplicate insert surfaces as gorm.ErrDuplicatedKey, which the service
// layer translates. Doing it in one statement avoids the check-then-create
// race between concurrent signups.
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	GetAll() ([]domain.User, error)
	Update(user *domain.User) error
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *domain.User) error {
	result := r.db.Create(user)
	return result.Error
}

func (r *gormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	result := r.db.First(&user, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) GetAll() ([]domain.User, error) {
	var users []domain.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *gormUserRepository) Update(user *domain.User) error {
	result := r.db.Save(user)
	return result.Error
}
