// Package usecase defines the application's use case interfaces and their
// input/output structures.
package usecase

import (
	"context"

	"journal/internal/domain/entity"
)

// CredentialsInput carries the username/password pair for signup and login.
type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionOutput is the result of a successful signup or login. The token is
// what the delivery layer hands to the client as its session.
type SessionOutput struct {
	User         *entity.User
	SessionToken string
}

// AuthUsecase defines the interface for account and session use cases.
type AuthUsecase interface {
	// Signup creates a new account and establishes a session for it.
	Signup(ctx context.Context, input *CredentialsInput) (*SessionOutput, error)

	// Login verifies credentials and establishes a session.
	Login(ctx context.Context, input *CredentialsInput) (*SessionOutput, error)
}
