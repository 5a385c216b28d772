package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses with errors.Is.
// Anything else coming out of a service is a dependency failure and maps to
// a 500 with a generic message; the underlying error is logged, not returned
// to the caller.
var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
