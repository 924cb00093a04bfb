package context

import "github.com/labstack/echo/v4"

const (
	// KeyUserID is the key for storing the authenticated user's ID.
	KeyUserID ContextKey = "user_id"

	// KeyUsername is the key for storing the authenticated user's name.
	KeyUsername ContextKey = "username"
)

// GetUserID extracts the authenticated user's ID from echo.Context.
// The second return value is false for guest requests.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyUserID)).(int64)

	return id, ok
}

// SetUserID stores the authenticated user's ID in echo.Context.
func SetUserID(c echo.Context, userID int64) {
	c.Set(string(KeyUserID), userID)
}

// GetUsername extracts the authenticated user's name from echo.Context.
func GetUsername(c echo.Context) (string, bool) {
	name, ok := c.Get(string(KeyUsername)).(string)

	return name, ok
}

// SetUsername stores the authenticated user's name in echo.Context.
func SetUsername(c echo.Context, username string) {
	c.Set(string(KeyUsername), username)
}
