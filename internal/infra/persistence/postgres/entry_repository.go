package postgres

import (
	"context"
	"time"

	"journal/internal/domain/entity"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"
	"journal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface.
// Every query filters on user_id, so a row owned by another user behaves
// exactly like a missing row.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateEntry persists a new entry for a user.
func (repo *entryRepository) CreateEntry(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEntryNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntriesByUser retrieves all entries for a specific user, newest first.
func (repo *entryRepository) FindEntriesByUser(ctx context.Context, userID int64) ([]*entity.Entry, error) {
	var entryModels []*model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by user")
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// FindEntryByID retrieves a single entry owned by the given user.
func (repo *entryRepository) FindEntryByID(ctx context.Context, userID, entryID int64) (*entity.Entry, error) {
	var entryM model.EntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by ID")
	}

	return toEntryDomain(&entryM), nil
}

// UpdateEntry overwrites title and content of an entry owned by the given user.
// The ownership check and the write happen in one statement.
func (repo *entryRepository) UpdateEntry(ctx context.Context, userID, entryID int64, title, content string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// DeleteEntry permanently removes an entry owned by the given user.
func (repo *entryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.EntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	return &entity.Entry{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
