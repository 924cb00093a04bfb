package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"journal/config"
	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/service"
	mockService "journal/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "journal_session"

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService) {
	tokenSvc := mockService.NewMockTokenService(t)

	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		Secret:     "test-secret",
		TTL:        time.Hour,
		CookieName: testCookieName,
	}

	return NewAuthMiddleware(tokenSvc, cfg), tokenSvc
}

func newRequestContext(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_ValidSession(t *testing.T) {
	mw, tokenSvc := newAuthMiddleware(t)

	tokenSvc.EXPECT().
		ValidateSessionToken("session-token").
		Return(&service.SessionClaims{UserID: 42, Username: "alice"}, nil)

	c, _ := newRequestContext(&http.Cookie{Name: testCookieName, Value: "session-token"})

	var calledWithUserID int64
	next := func(c echo.Context) error {
		id, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		calledWithUserID = id

		name, ok := deliverycontext.GetUsername(c)
		require.True(t, ok)
		assert.Equal(t, "alice", name)

		return nil
	}

	require.NoError(t, mw.Authenticate(next)(c))
	assert.Equal(t, int64(42), calledWithUserID)
}

func TestAuthMiddleware_Authenticate_MissingCookie(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	c, rec := newRequestContext(nil)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, mw.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mw, tokenSvc := newAuthMiddleware(t)

	tokenSvc.EXPECT().
		ValidateSessionToken("expired-token").
		Return(nil, errors.New("token is expired"))

	c, rec := newRequestContext(&http.Cookie{Name: testCookieName, Value: "expired-token"})

	next := func(c echo.Context) error {
		t.Fatal("next should not be called for an invalid session")

		return nil
	}

	require.NoError(t, mw.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_CurrentClaims_EmptyCookieValue(t *testing.T) {
	mw, _ := newAuthMiddleware(t)

	c, _ := newRequestContext(&http.Cookie{Name: testCookieName, Value: ""})

	assert.Nil(t, mw.CurrentClaims(c))
}
