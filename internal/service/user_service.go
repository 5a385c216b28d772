package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/prasetia/todo-auth-backend/internal/domain"
	"github.com/prasetia/todo-auth-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserRequest holds the data needed to register a user. All four
// fields are required.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	NoHp     string `json:"noHp"`
}

// UpdateUserRequest holds the data for updating a user. Omitted fields are
// left untouched; a provided password is re-hashed before storage.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	NoHp     *string `json:"noHp"`
}

// UserResponse is the public projection of a user. It is the only shape the
// service hands out, so the password hash can never leak into a response.
type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	NoHp      string `json:"noHp"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserService defines the operations for managing user accounts.
type UserService interface {
	// CreateUser registers a new account. The password is stored as a
	// bcrypt hash. A duplicate email returns ErrEmailTaken, driven by the
	// database unique constraint rather than a racy pre-check.
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)

	GetAllUsers(ctx context.Context) ([]UserResponse, error)
	GetUserByID(ctx context.Context, id uint) (*UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service backed by the given repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func userToResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		NoHp:      u.NoHp,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		NoHp:     req.NoHp,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Printf("Error creating user in repository: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return userToResponse(user), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Error fetching all users from repository: %v", err)
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *userToResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("Error fetching user %d from repository: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return userToResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("Error fetching user %d for update: %v", id, err)
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.NoHp != nil {
		existing.NoHp = *req.NoHp
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for user %d: %v", id, err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.Password = string(hashed)
	}

	if err := s.repo.Update(existing); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		log.Printf("Error updating user %d in repository: %v", id, err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return userToResponse(existing), nil
}
