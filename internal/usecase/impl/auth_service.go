// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/domain/service"
	"journal/internal/errors"
	"journal/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a new account and establishes a session for it.
func (srv *authService) Signup(ctx context.Context, input *usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "signup rejected")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Password hashing failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "signup failed")
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
	}

	// Uniqueness is enforced by the store; a lost race surfaces here as a
	// duplicate error rather than a partial write.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "signup failed")
		}

		srv.log(ctx).Error("Signup failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.IssueSessionToken(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Session token issuance failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "signup failed")
	}

	srv.log(ctx).Info("User signed up", slog.Int64("userID", user.ID), slog.String("username", username))

	return &usecase.SessionOutput{User: user, SessionToken: token}, nil
}

// Login verifies credentials and establishes a session.
func (srv *authService) Login(ctx context.Context, input *usecase.CredentialsInput) (*usecase.SessionOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || strings.TrimSpace(input.Password) == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login rejected")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.IssueSessionToken(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Session token issuance failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "login failed")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID), slog.String("username", username))

	return &usecase.SessionOutput{User: user, SessionToken: token}, nil
}
