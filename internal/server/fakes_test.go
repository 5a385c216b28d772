package server

import (
	"context"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/service"
)

// stub services for handler tests. Each method returns the canned value or
// error set on the struct.

type stubTodoService struct {
	todo  *service.TodoResponse
	todos []service.TodoResponse
	err   error
}

func (s *stubTodoService) CreateTodo(ctx context.Context, req service.CreateTodoRequest) (*service.TodoResponse, error) {
	return s.todo, s.err
}

func (s *stubTodoService) GetTodoByID(ctx context.Context, id uint) (*service.TodoResponse, error) {
	return s.todo, s.err
}

func (s *stubTodoService) GetAllTodos(ctx context.Context) ([]service.TodoResponse, error) {
	return s.todos, s.err
}

func (s *stubTodoService) SearchTodos(ctx context.Context, q string) ([]service.TodoResponse, error) {
	return s.todos, s.err
}

func (s *stubTodoService) UpdateTodo(ctx context.Context, id uint, req service.UpdateTodoRequest) (*service.TodoResponse, error) {
	return s.todo, s.err
}

func (s *stubTodoService) DeleteTodo(ctx context.Context, id uint) error {
	return s.err
}

type stubUserService struct {
	user  *service.UserResponse
	users []service.UserResponse
	err   error
}

func (s *stubUserService) CreateUser(ctx context.Context, req service.CreateUserRequest) (*service.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) GetAllUsers(ctx context.Context) ([]service.UserResponse, error) {
	return s.users, s.err
}

func (s *stubUserService) GetUserByID(ctx context.Context, id uint) (*service.UserResponse, error) {
	return s.user, s.err
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uint, req service.UpdateUserRequest) (*service.UserResponse, error) {
	return s.user, s.err
}

type stubAuthService struct {
	token string
	err   error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.token, s.err
}

func (s *stubAuthService) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	return s.token, s.err
}

// newTestServer assembles a Server around the given stubs with a real token
// manager so the middleware path is exercised for real.
func newTestServer(todos *stubTodoService, users *stubUserService, authSvc *stubAuthService) (*Server, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", auth.DefaultTTL)
	if todos == nil {
		todos = &stubTodoService{}
	}
	if users == nil {
		users = &stubUserService{}
	}
	if authSvc == nil {
		authSvc = &stubAuthService{}
	}
	return &Server{
		port:        8080,
		todoService: todos,
		userService: users,
		authService: authSvc,
		tokens:      tokens,
	}, tokens
}
