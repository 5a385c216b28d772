package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/prasetia/todo-auth-backend/internal/service"
)

func (s *Server) getAllTodosHandler(w http.ResponseWriter, r *http.Request) {
	todos, err := s.todoService.GetAllTodos(r.Context())
	if err != nil {
		log.Printf("Error calling GetAllTodos service: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to retrieve todos")
		return
	}

	respondSuccess(w, http.StatusOK, "Todos retrieved", todos)
}

func (s *Server) searchTodosHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	todos, err := s.todoService.SearchTodos(r.Context(), q)
	if err != nil {
		log.Printf("Error calling SearchTodos service: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to search todos")
		return
	}

	respondSuccess(w, http.StatusOK, "Search results for '"+q+"'", todos)
}

func (s *Server) getTodoByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	todo, err := s.todoService.GetTodoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
		} else {
			log.Printf("Error calling GetTodoByID service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to retrieve todo")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "Todo retrieved", todo)
}

func (s *Server) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := s.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		log.Printf("Error calling CreateTodo service: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create todo")
		return
	}

	respondSuccess(w, http.StatusCreated, "Todo created", todo)
}

func (s *Server) updateTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req service.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := s.todoService.UpdateTodo(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
		} else {
			log.Printf("Error calling UpdateTodo service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to update todo")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "Todo updated", todo)
}

func (s *Server) deleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	err := s.todoService.DeleteTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			respondError(w, http.StatusNotFound, "Todo not found")
		} else {
			log.Printf("Error calling DeleteTodo service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete todo")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
