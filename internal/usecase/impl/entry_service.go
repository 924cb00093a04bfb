package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "journal/internal/delivery/context"
	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/errors"
	"journal/internal/usecase"

	"go.uber.org/fx"
)

type entryService struct {
	entryRepo repository.EntryRepository
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for entryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	EntryRepo repository.EntryRepository
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		entryRepo: params.EntryRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEntry stores a new entry for the user. Title and content are trimmed
// but may be empty.
func (srv *entryService) CreateEntry(ctx context.Context, userID int64, input *usecase.EntryInput) (*entity.Entry, error) {
	entry := &entity.Entry{
		UserID:  userID,
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
	}

	if err := srv.entryRepo.CreateEntry(ctx, entry); err != nil {
		srv.log(ctx).Error("Entry creation failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return entry, nil
}

// ListEntries returns all of the user's entries, newest first. A user with no
// entries gets an empty list, not an error.
func (srv *entryService) ListEntries(ctx context.Context, userID int64) ([]*entity.Entry, error) {
	entries, err := srv.entryRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Entry listing failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return entries, nil
}

// GetEntry returns a single entry owned by the user. A missing entry and an
// entry owned by someone else both report not found.
func (srv *entryService) GetEntry(ctx context.Context, userID, entryID int64) (*entity.Entry, error) {
	entry, err := srv.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEntryNotFound, "entry lookup failed")
		}

		srv.log(ctx).Error("Entry lookup failed", slog.Int64("userID", userID), slog.Int64("entryID", entryID), slog.Any("error", err))

		return nil, err
	}

	return entry, nil
}

// UpdateEntry overwrites the entry's title and content.
func (srv *entryService) UpdateEntry(ctx context.Context, userID, entryID int64, input *usecase.EntryInput) error {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	if err := srv.entryRepo.UpdateEntry(ctx, userID, entryID, title, content); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(domainerrors.ErrEntryNotFound, "entry update failed")
		}

		srv.log(ctx).Error("Entry update failed", slog.Int64("userID", userID), slog.Int64("entryID", entryID), slog.Any("error", err))

		return err
	}

	return nil
}

// DeleteEntry permanently removes the entry. Deleting an already deleted entry
// reports not found, never a crash.
func (srv *entryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if err := srv.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return errors.Wrap(domainerrors.ErrEntryNotFound, "entry deletion failed")
		}

		srv.log(ctx).Error("Entry deletion failed", slog.Int64("userID", userID), slog.Int64("entryID", entryID), slog.Any("error", err))

		return err
	}

	return nil
}
