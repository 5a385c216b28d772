package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/prasetia/todo-auth-backend/internal/auth"
	"github.com/prasetia/todo-auth-backend/internal/domain"
	"github.com/prasetia/todo-auth-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues session tokens: from an email/password pair or from a
// Google ID token. Token verification itself lives in the auth package and
// the server middleware.
type AuthService interface {
	// Login verifies the password against the stored bcrypt hash and
	// returns a signed session token. Unknown email and wrong password are
	// indistinguishable to the caller: both are ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// LoginWithGoogle validates idToken with the identity provider,
	// finds or creates the user by the verified email, and returns a
	// signed session token. Users created this way have no password or
	// phone number until they set one.
	LoginWithGoogle(ctx context.Context, idToken string) (string, error)
}

type authService struct {
	users    repository.UserRepository
	tokens   *auth.TokenManager
	verifier auth.GoogleVerifier
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, verifier auth.GoogleVerifier) AuthService {
	return &authService{users: users, tokens: tokens, verifier: verifier}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email for login: %v", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Google-created accounts store an empty hash, which never matches.
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing session token for user %d: %v", user.ID, err)
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	claim, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	user, err := s.users.FindByEmail(claim.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error fetching user by email for google login: %v", err)
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
		user = &domain.User{
			Name:  claim.Name,
			Email: claim.Email,
		}
		if err := s.users.Create(user); err != nil {
			// A concurrent first login with the same account can win the
			// insert; fall back to reading the row it created.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				user, err = s.users.FindByEmail(claim.Email)
			}
			if err != nil {
				log.Printf("Error creating user for google login: %v", err)
				return "", fmt.Errorf("failed to create user: %w", err)
			}
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing session token for user %d: %v", user.ID, err)
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}
