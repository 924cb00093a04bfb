package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload carried by a signed session token.
type SessionClaims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed session
// tokens. The token is the server-readable proof of authentication handed to
// the client; its internal shape is an implementation detail of this service.
type TokenService interface {
	// IssueSessionToken creates a signed session token bound to a user.
	IssueSessionToken(userID int64, username string) (string, error)

	// ValidateSessionToken checks a token string and returns its claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionTTL returns the configured lifetime of a session token.
	SessionTTL() time.Duration
}
