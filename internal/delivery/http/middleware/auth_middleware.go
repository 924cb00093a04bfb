package middleware

import (
	"journal/config"
	"journal/internal/delivery/http/response"
	"journal/internal/domain/service"

	deliverycontext "journal/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates protected routes on a valid session cookie.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Session.CookieName,
	}
}

// CurrentClaims resolves the session attached to the request, if any.
// Missing or invalid cookies resolve to nil; this never fails the request.
func (m *AuthMiddleware) CurrentClaims(c echo.Context) *service.SessionClaims {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims, err := m.tokenSvc.ValidateSessionToken(cookie.Value)
	if err != nil {
		return nil
	}

	return claims
}

// Authenticate validates the session cookie and rejects guests with 401
// before any data access happens. On success the user's identity is stored
// on the context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := m.CurrentClaims(c)
		if claims == nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetUsername(c, claims.Username)

		return next(c)
	}
}
