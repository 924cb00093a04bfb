package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/delivery/http/response"
	"journal/internal/domain/entity"
	"journal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EntryHandler holds dependencies for journal entry handlers. Every route it
// serves sits behind the session middleware, so a resolved user identity is
// always present.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all of the caller's entries, newest first.
func (h *EntryHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if entries == nil {
		entries = []*entity.Entry{}
	}

	return response.Success(c, http.StatusOK, response.Body{"entries": entries})
}

// Create stores a new entry for the caller.
func (h *EntryHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	input := new(usecase.EntryInput)
	_ = c.Bind(input)

	entry, err := h.uc.CreateEntry(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"entry_id": entry.ID})
}

// Get returns a single entry owned by the caller.
func (h *EntryHandler) Get(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return response.NotFound(c, "Not found")
	}

	entry, err := h.uc.GetEntry(c.Request().Context(), userID, entryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Body{"entry": entry})
}

// Update overwrites the title and content of an entry owned by the caller.
func (h *EntryHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return response.NotFound(c, "Not found")
	}

	input := new(usecase.EntryInput)
	_ = c.Bind(input)

	if err := h.uc.UpdateEntry(c.Request().Context(), userID, entryID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete permanently removes an entry owned by the caller.
func (h *EntryHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	entryID, err := parseEntryID(c)
	if err != nil {
		return response.NotFound(c, "Not found")
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// parseEntryID reads the path parameter. A non-numeric id is handled like a
// nonexistent entry.
func parseEntryID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
