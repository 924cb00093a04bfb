package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	mockRepo "journal/internal/mocks/repository"
	"journal/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// entryServiceFixtures holds all test dependencies for entry service tests.
type entryServiceFixtures struct {
	service   usecase.EntryUsecase
	entryRepo *mockRepo.MockEntryRepository
}

func createTestEntryService(t *testing.T) entryServiceFixtures {
	entryRepo := mockRepo.NewMockEntryRepository(t)

	service := NewEntryService(EntryServiceParams{
		EntryRepo: entryRepo,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return entryServiceFixtures{
		service:   service,
		entryRepo: entryRepo,
	}
}

func TestEntryService_CreateEntry_Success(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	now := time.Now()

	fx.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).
		Run(func(_ context.Context, entry *entity.Entry) {
			entry.ID = 1
			entry.CreatedAt = now
			entry.UpdatedAt = now
		}).
		Return(nil)

	entry, err := fx.service.CreateEntry(ctx, 42, &usecase.EntryInput{Title: "t1", Content: "c1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, int64(42), entry.UserID)
	assert.Equal(t, "t1", entry.Title)
	assert.Equal(t, "c1", entry.Content)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestEntryService_CreateEntry_TrimsFields(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).
		Run(func(_ context.Context, entry *entity.Entry) {
			assert.Equal(t, "t1", entry.Title)
			assert.Equal(t, "c1", entry.Content)
		}).
		Return(nil)

	_, err := fx.service.CreateEntry(ctx, 42, &usecase.EntryInput{Title: "  t1  ", Content: "\nc1\t"})
	require.NoError(t, err)
}

func TestEntryService_CreateEntry_EmptyFieldsAllowed(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.Entry")).
		Return(nil)

	entry, err := fx.service.CreateEntry(ctx, 42, &usecase.EntryInput{})
	require.NoError(t, err)
	assert.Empty(t, entry.Title)
	assert.Empty(t, entry.Content)
}

func TestEntryService_ListEntries_NewestFirst(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	stored := []*entity.Entry{
		{ID: 2, UserID: 42, Title: "newer"},
		{ID: 1, UserID: 42, Title: "older"},
	}

	fx.entryRepo.EXPECT().FindEntriesByUser(ctx, int64(42)).Return(stored, nil)

	entries, err := fx.service.ListEntries(ctx, 42)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Title)
	assert.Equal(t, "older", entries[1].Title)
}

func TestEntryService_ListEntries_EmptyIsNotAnError(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().FindEntriesByUser(ctx, int64(42)).Return([]*entity.Entry{}, nil)

	entries, err := fx.service.ListEntries(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntryService_GetEntry_Success(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	stored := &entity.Entry{ID: 1, UserID: 42, Title: "t1", Content: "c1"}

	fx.entryRepo.EXPECT().FindEntryByID(ctx, int64(42), int64(1)).Return(stored, nil)

	entry, err := fx.service.GetEntry(ctx, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, entry)
}

func TestEntryService_GetEntry_NotFound(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().FindEntryByID(ctx, int64(42), int64(99)).Return(nil, repository.ErrEntryNotFound)

	entry, err := fx.service.GetEntry(ctx, 42, 99)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestEntryService_GetEntry_OtherUsersEntryIsNotFound(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	// Entry 1 belongs to user 42; user 43 asking for it gets the same answer
	// as asking for a nonexistent entry.
	fx.entryRepo.EXPECT().FindEntryByID(ctx, int64(43), int64(1)).Return(nil, repository.ErrEntryNotFound)

	entry, err := fx.service.GetEntry(ctx, 43, 1)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestEntryService_UpdateEntry_Success(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().
		UpdateEntry(ctx, int64(42), int64(1), "t2", "c2").
		Return(nil)

	err := fx.service.UpdateEntry(ctx, 42, 1, &usecase.EntryInput{Title: " t2 ", Content: " c2 "})
	require.NoError(t, err)
}

func TestEntryService_UpdateEntry_NotFound(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().
		UpdateEntry(ctx, int64(42), int64(99), "t2", "c2").
		Return(repository.ErrEntryNotFound)

	err := fx.service.UpdateEntry(ctx, 42, 99, &usecase.EntryInput{Title: "t2", Content: "c2"})
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestEntryService_DeleteEntry_Success(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().DeleteEntry(ctx, int64(42), int64(1)).Return(nil)

	err := fx.service.DeleteEntry(ctx, 42, 1)
	require.NoError(t, err)
}

func TestEntryService_DeleteEntry_SecondDeleteIsNotFound(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	fx.entryRepo.EXPECT().DeleteEntry(ctx, int64(42), int64(1)).Return(nil).Once()
	fx.entryRepo.EXPECT().DeleteEntry(ctx, int64(42), int64(1)).Return(repository.ErrEntryNotFound).Once()

	require.NoError(t, fx.service.DeleteEntry(ctx, 42, 1))

	err := fx.service.DeleteEntry(ctx, 42, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}
