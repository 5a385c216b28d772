package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/service"
)

func (s *Server) getAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.GetAllUsers(r.Context())
	if err != nil {
		log.Printf("Error calling GetAllUsers service: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	respondSuccess(w, http.StatusOK, "Users retrieved", users)
}

func (s *Server) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.NoHp == "" {
		respondError(w, http.StatusBadRequest, "All fields are required: name, email, password, noHp")
		return
	}

	user, err := s.userService.CreateUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email already registered")
		} else {
			log.Printf("Error calling CreateUser service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	respondSuccess(w, http.StatusCreated, "User created", user)
}

func (s *Server) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.userService.UpdateUser(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, "Email already registered")
		default:
			log.Printf("Error calling UpdateUser service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "User updated", user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := s.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
		} else {
			log.Printf("Error calling Login service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "Login successful", map[string]string{"token": token})
}

type googleAuthRequest struct {
	IDToken string `json:"idToken"`
}

func (s *Server) googleAuthHandler(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.IDToken == "" {
		respondError(w, http.StatusBadRequest, "Field 'idToken' is required")
		return
	}

	token, err := s.authService.LoginWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			respondError(w, http.StatusUnauthorized, "Invalid Google token")
		} else {
			log.Printf("Error calling LoginWithGoogle service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to log in with Google")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "Login successful", map[string]string{"token": token})
}

func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "token not found")
		return
	}

	user, err := s.userService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		// The account may have been deleted after the token was issued.
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("Error calling GetUserByID service: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to retrieve profile")
		}
		return
	}

	respondSuccess(w, http.StatusOK, "Profile retrieved", user)
}
