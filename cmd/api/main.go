package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/database"
	"github.com/prasetia/todo-auth-backend/internal/domain"
	"github.com/prasetia/todo-auth-backend/internal/repository"
	"github.com/prasetia/todo-auth-backend/internal/server"
	"github.com/prasetia/todo-auth-backend/internal/service"

	_ "github.com/joho/godotenv/autoload"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight requests 5 seconds to finish.
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	if dbService != nil {
		log.Println("Closing database connection pool...")
		if err := dbService.Close(); err != nil {
			log.Printf("Error closing database connection pool: %v", err)
		} else {
			log.Println("Database connection pool closed.")
		}
	}

	log.Println("Server exiting")

	done <- true
}

func main() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable must be set")
	}
	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	if googleClientID == "" {
		log.Fatal("GOOGLE_CLIENT_ID environment variable must be set")
	}

	dbService := database.New()
	gormDB := dbService.GetDB()

	log.Println("Running database auto-migration...")
	if err := gormDB.AutoMigrate(&domain.Todo{}, &domain.User{}); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}
	log.Println("Database auto-migration complete.")

	todoRepo := repository.NewGormTodoRepository(gormDB)
	userRepo := repository.NewGormUserRepository(gormDB)

	tokens := auth.NewTokenManager(jwtSecret, auth.DefaultTTL)
	verifier := auth.NewGoogleVerifier(googleClientID)

	todoService := service.NewTodoService(todoRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, tokens, verifier)

	chiServer := server.NewServer(todoService, userService, authService, tokens, dbService)

	done := make(chan bool, 1)
	go gracefulShutdown(chiServer, dbService, done)

	log.Printf("Starting server on %s", chiServer.Addr)
	err := chiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server ListenAndServe error: %v", err)
	}

	<-done
	log.Println("Graceful shutdown complete.")
}
