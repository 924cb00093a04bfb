package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	mockUsecase "journal/internal/mocks/usecase"
	"journal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type entryHandlerFixtures struct {
	handler *EntryHandler
	uc      *mockUsecase.MockEntryUsecase
}

func createTestEntryHandler(t *testing.T) entryHandlerFixtures {
	uc := mockUsecase.NewMockEntryUsecase(t)
	h := NewEntryHandler(uc, slog.New(slog.DiscardHandler))

	return entryHandlerFixtures{handler: h, uc: uc}
}

// authenticatedContext builds a context as it looks after the session
// middleware has resolved the user.
func authenticatedContext(method, target, body string, userID int64) (echo.Context, func() string, func() int) {
	c, rec := newJSONContext(method, target, body)
	deliverycontext.SetUserID(c, userID)
	deliverycontext.SetUsername(c, "alice")

	return c, rec.Body.String, func() int { return rec.Code }
}

func TestEntryHandler_List_Success(t *testing.T) {
	fx := createTestEntryHandler(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entries := []*entity.Entry{
		{ID: 2, UserID: 42, Title: "t2", Content: "c2", CreatedAt: now, UpdatedAt: now},
		{ID: 1, UserID: 42, Title: "t1", Content: "c1", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
	}

	fx.uc.EXPECT().ListEntries(mock.Anything, int64(42)).Return(entries, nil)

	c, body, code := authenticatedContext(http.MethodGet, "/api/entries", "", 42)

	require.NoError(t, fx.handler.List(c))
	assert.Equal(t, http.StatusOK, code())
	assert.Contains(t, body(), `"success":true`)
	assert.Contains(t, body(), `"t2"`)
	assert.Contains(t, body(), `"t1"`)
	// Owner identity never appears in the payload.
	assert.NotContains(t, body(), "user_id")
}

func TestEntryHandler_List_EmptyList(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().ListEntries(mock.Anything, int64(42)).Return(nil, nil)

	c, body, code := authenticatedContext(http.MethodGet, "/api/entries", "", 42)

	require.NoError(t, fx.handler.List(c))
	assert.Equal(t, http.StatusOK, code())
	assert.JSONEq(t, `{"success":true,"entries":[]}`, body())
}

func TestEntryHandler_List_NoSession(t *testing.T) {
	fx := createTestEntryHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/entries", "")

	require.NoError(t, fx.handler.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, rec.Body.String())
}

func TestEntryHandler_Create_Success(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		CreateEntry(mock.Anything, int64(42), &usecase.EntryInput{Title: "t1", Content: "c1"}).
		Return(&entity.Entry{ID: 7, UserID: 42, Title: "t1", Content: "c1"}, nil)

	c, body, code := authenticatedContext(http.MethodPost, "/api/entries", `{"title":"t1","content":"c1"}`, 42)

	require.NoError(t, fx.handler.Create(c))
	assert.Equal(t, http.StatusOK, code())
	assert.JSONEq(t, `{"success":true,"entry_id":7}`, body())
}

func TestEntryHandler_Create_EmptyBody(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		CreateEntry(mock.Anything, int64(42), &usecase.EntryInput{}).
		Return(&entity.Entry{ID: 8, UserID: 42}, nil)

	c, body, code := authenticatedContext(http.MethodPost, "/api/entries", "", 42)

	require.NoError(t, fx.handler.Create(c))
	assert.Equal(t, http.StatusOK, code())
	assert.JSONEq(t, `{"success":true,"entry_id":8}`, body())
}

func TestEntryHandler_Get_Success(t *testing.T) {
	fx := createTestEntryHandler(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	fx.uc.EXPECT().
		GetEntry(mock.Anything, int64(42), int64(7)).
		Return(&entity.Entry{ID: 7, UserID: 42, Title: "t1", Content: "c1", CreatedAt: created, UpdatedAt: created}, nil)

	c, body, code := authenticatedContext(http.MethodGet, "/api/entries/7", "", 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusOK, code())
	assert.Contains(t, body(), `"success":true`)
	assert.Contains(t, body(), `"title":"t1"`)
	assert.Contains(t, body(), `"content":"c1"`)
	assert.NotContains(t, body(), "user_id")
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		GetEntry(mock.Anything, int64(43), int64(7)).
		Return(nil, errors.Wrap(domainerrors.ErrEntryNotFound, "entry lookup failed"))

	c, body, code := authenticatedContext(http.MethodGet, "/api/entries/7", "", 43)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusNotFound, code())
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, body())
}

func TestEntryHandler_Get_NonNumericID(t *testing.T) {
	fx := createTestEntryHandler(t)

	c, body, code := authenticatedContext(http.MethodGet, "/api/entries/abc", "", 42)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, fx.handler.Get(c))
	assert.Equal(t, http.StatusNotFound, code())
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, body())
}

func TestEntryHandler_Update_Success(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		UpdateEntry(mock.Anything, int64(42), int64(7), &usecase.EntryInput{Title: "t2", Content: "c2"}).
		Return(nil)

	c, body, code := authenticatedContext(http.MethodPut, "/api/entries/7", `{"title":"t2","content":"c2"}`, 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.Update(c))
	assert.Equal(t, http.StatusOK, code())
	assert.JSONEq(t, `{"success":true}`, body())
}

func TestEntryHandler_Update_NotFound(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		UpdateEntry(mock.Anything, int64(42), int64(99), mock.AnythingOfType("*usecase.EntryInput")).
		Return(errors.Wrap(domainerrors.ErrEntryNotFound, "entry update failed"))

	c, body, code := authenticatedContext(http.MethodPut, "/api/entries/99", `{"title":"t2","content":"c2"}`, 42)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, fx.handler.Update(c))
	assert.Equal(t, http.StatusNotFound, code())
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, body())
}

func TestEntryHandler_Delete_Success(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().DeleteEntry(mock.Anything, int64(42), int64(7)).Return(nil)

	c, body, code := authenticatedContext(http.MethodDelete, "/api/entries/7", "", 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.Delete(c))
	assert.Equal(t, http.StatusOK, code())
	assert.JSONEq(t, `{"success":true}`, body())
}

func TestEntryHandler_Delete_SecondDeleteNotFound(t *testing.T) {
	fx := createTestEntryHandler(t)

	fx.uc.EXPECT().
		DeleteEntry(mock.Anything, int64(42), int64(7)).
		Return(errors.Wrap(domainerrors.ErrEntryNotFound, "entry deletion failed"))

	c, body, code := authenticatedContext(http.MethodDelete, "/api/entries/7", "", 42)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, fx.handler.Delete(c))
	assert.Equal(t, http.StatusNotFound, code())
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, body())
}
