// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"journal/internal/domain/entity"
)

// ErrEntryNotFound is returned when an entry does not exist for the given
// owner. Lookups are always scoped by owner, so "exists but owned by someone
// else" and "does not exist" are deliberately indistinguishable here.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository defines the interface for entry-related database operations.
// Every operation is scoped to a single owning user; there is no way to reach
// another user's entries through this interface.
type EntryRepository interface {
	// CreateEntry persists a new entry and fills in its generated ID.
	CreateEntry(ctx context.Context, entry *entity.Entry) error

	// FindEntriesByUser retrieves all entries owned by userID, newest first.
	FindEntriesByUser(ctx context.Context, userID int64) ([]*entity.Entry, error)

	// FindEntryByID retrieves a single entry owned by userID.
	FindEntryByID(ctx context.Context, userID, entryID int64) (*entity.Entry, error)

	// UpdateEntry overwrites title/content and refreshes the updated timestamp
	// of an entry owned by userID in a single atomic statement.
	UpdateEntry(ctx context.Context, userID, entryID int64, title, content string) error

	// DeleteEntry permanently removes an entry owned by userID.
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}
