// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"journal/config"
	"journal/internal/delivery/http/middleware"
	"journal/internal/delivery/http/response"
	"journal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc             usecase.AuthUsecase
	authMiddleware *middleware.AuthMiddleware
	sessionCfg     *config.SessionConfig
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, authMiddleware *middleware.AuthMiddleware, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:             uc,
		authMiddleware: authMiddleware,
		sessionCfg:     cfg.Session,
		logger:         logger,
	}
}

type meResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

// Me reports whether the request carries a valid session. Always 200; a guest
// simply gets logged_in=false.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := h.authMiddleware.CurrentClaims(c)
	if claims == nil {
		return c.JSON(http.StatusOK, meResponse{LoggedIn: false})
	}

	return c.JSON(http.StatusOK, meResponse{LoggedIn: true, Username: claims.Username})
}

// Signup handles the account creation request and logs the new user in.
func (h *AuthHandler) Signup(c echo.Context) error {
	input := new(usecase.CredentialsInput)
	// A malformed or absent body behaves like an empty object; field checks
	// happen in the usecase.
	_ = c.Bind(input)

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.newSessionCookie(output.SessionToken))

	return response.Success(c, http.StatusOK, nil)
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.CredentialsInput)
	_ = c.Bind(input)

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.newSessionCookie(output.SessionToken))

	return response.Success(c, http.StatusOK, nil)
}

// Logout clears the session cookie. Idempotent; logging out as a guest is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredSessionCookie())

	return response.Success(c, http.StatusOK, nil)
}

func (h *AuthHandler) newSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.sessionCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.sessionCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, response.Body{"status": "ok"})
}
