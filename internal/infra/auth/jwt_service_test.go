package auth

import (
	"testing"
	"time"

	"journal/config"

	"github.com/stretchr/testify/assert"
)

func testSessionConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret: secret,
		TTL:    ttl,
	}

	return cfg
}

func TestJWTService_IssueAndValidateSessionToken(t *testing.T) {
	cfg := testSessionConfig("test_session_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.IssueSessionToken(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testSessionConfig("test_session_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenSignedWithOtherSecret(t *testing.T) {
	issuer, err := NewJWTService(testSessionConfig("secret-one-very-long-for-testing", time.Hour))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testSessionConfig("secret-two-very-long-for-testing", time.Hour))
	assert.NoError(t, err)

	token, err := issuer.IssueSessionToken(7, "bob")
	assert.NoError(t, err)

	claims, err := verifier.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testSessionConfig("test_session_secret_key_very_long_for_testing", -time.Minute)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueSessionToken(1, "alice")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateSessionToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testSessionConfig("", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func TestJWTService_SessionTTL(t *testing.T) {
	ttl := 7 * 24 * time.Hour
	cfg := testSessionConfig("test_session_secret_key_very_long_for_testing", ttl)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	assert.Equal(t, ttl, jwtService.SessionTTL())
}
