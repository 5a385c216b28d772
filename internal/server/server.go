package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/database"
	"github.com/prasetia/todo-auth-backend/internal/service"
)

type Server struct {
	port        int
	todoService service.TodoService
	userService service.UserService
	authService service.AuthService
	tokens      *auth.TokenManager
	db          database.Service
}

func NewServer(
	todoService service.TodoService,
	userService service.UserService,
	authService service.AuthService,
	tokens *auth.TokenManager,
	dbService database.Service,
) *http.Server {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Printf("Warning: Invalid PORT environment variable '%s'. Using default 8080. Error: %v", portStr, err)
		port = 8080
	}

	appServer := &Server{
		port:        port,
		todoService: todoService,
		userService: userService,
		authService: authService,
		tokens:      tokens,
		db:          dbService,
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", appServer.port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
