package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.healthHandler)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", s.getAllTodosHandler)
		r.Get("/search", s.searchTodosHandler)
		r.Post("/", s.createTodoHandler)
		r.Get("/{id}", s.getTodoByIDHandler)
		r.Put("/{id}", s.updateTodoHandler)
		r.Delete("/{id}", s.deleteTodoHandler)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.getAllUsersHandler)
		r.Post("/", s.createUserHandler)
		r.Put("/{id}", s.updateUserHandler)
	})

	r.Post("/login", s.loginHandler)
	r.Post("/api/auth/google", s.googleAuthHandler)

	r.With(s.requireAuth).Get("/profile", s.profileHandler)

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health()
	if status, ok := healthStats["status"]; ok && status == "down" {
		writeJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	writeJSON(w, http.StatusOK, healthStats)
}

// decodeJSON decodes the request body into dst and translates the usual
// decoder failures into messages a client can act on. Returns false after
// writing the 400 response itself.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err == nil {
		return true
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset))
	case errors.Is(err, io.ErrUnexpectedEOF):
		respondError(w, http.StatusBadRequest, "Request body contains badly-formed JSON")
	case errors.As(err, &unmarshalTypeError):
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)",
				unmarshalTypeError.Field, unmarshalTypeError.Offset))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		respondError(w, http.StatusBadRequest,
			fmt.Sprintf("Request body contains unknown field %s", fieldName))
	case errors.Is(err, io.EOF):
		respondError(w, http.StatusBadRequest, "Request body must not be empty")
	default:
		respondError(w, http.StatusBadRequest, "Invalid request body")
	}
	return false
}

// idParam parses the {id} URL parameter. Returns false after writing the 400
// response itself.
func idParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		respondError(w, http.StatusBadRequest, "Parameter 'id' must be a valid number")
		return 0, false
	}
	return uint(id), true
}
