package impl

import (
	"context"
	"log/slog"
	"testing"

	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	mockRepo "journal/internal/mocks/repository"
	mockService "journal/internal/mocks/service"
	"journal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	fx.tokenService.EXPECT().IssueSessionToken(int64(1), "alice").Return("session-token", nil)

	out, err := fx.service.Signup(ctx, &usecase.CredentialsInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "session-token", out.SessionToken)
}

func TestAuthService_Signup_TrimsUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			user.ID = 1
		}).
		Return(nil)

	fx.tokenService.EXPECT().IssueSessionToken(int64(1), "alice").Return("session-token", nil)

	_, err := fx.service.Signup(ctx, &usecase.CredentialsInput{Username: "  alice  ", Password: "pw1"})
	require.NoError(t, err)
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	cases := []usecase.CredentialsInput{
		{Username: "", Password: "pw1"},
		{Username: "alice", Password: ""},
		{Username: "   ", Password: "pw1"},
		{Username: "alice", Password: "   "},
		{},
	}

	for _, input := range cases {
		out, err := fx.service.Signup(ctx, &input)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
	}
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw2").Return("hashed-pw2", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUsername)

	out, err := fx.service.Signup(ctx, &usecase.CredentialsInput{Username: "alice", Password: "pw2"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw1").Return("", errors.New("bcrypt exploded"))

	out, err := fx.service.Signup(ctx, &usecase.CredentialsInput{Username: "alice", Password: "pw1"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hashed-pw1",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("pw1", "hashed-pw1").Return(true)
	fx.tokenService.EXPECT().IssueSessionToken(int64(7), "alice").Return("session-token", nil)

	out, err := fx.service.Login(ctx, &usecase.CredentialsInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, storedUser, out.User)
	assert.Equal(t, "session-token", out.SessionToken)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	out, err := fx.service.Login(ctx, &usecase.CredentialsInput{Username: "", Password: ""})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.CredentialsInput{Username: "ghost", Password: "pw1"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	storedUser := &entity.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: "hashed-pw1",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-pw1").Return(false)

	out, err := fx.service.Login(ctx, &usecase.CredentialsInput{Username: "alice", Password: "wrong"})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
