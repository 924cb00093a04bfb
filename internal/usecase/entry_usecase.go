package usecase

import (
	"context"

	"journal/internal/domain/entity"
)

// EntryInput carries the writable fields of an entry.
type EntryInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EntryUsecase defines the interface for journal entry use cases. Every
// operation is scoped to the authenticated user's identity.
type EntryUsecase interface {
	// CreateEntry stores a new entry for the user and returns it with
	// generated ID and timestamps.
	CreateEntry(ctx context.Context, userID int64, input *EntryInput) (*entity.Entry, error)

	// ListEntries returns all of the user's entries, newest first.
	ListEntries(ctx context.Context, userID int64) ([]*entity.Entry, error)

	// GetEntry returns a single entry owned by the user.
	GetEntry(ctx context.Context, userID, entryID int64) (*entity.Entry, error)

	// UpdateEntry overwrites the entry's title and content.
	UpdateEntry(ctx context.Context, userID, entryID int64, input *EntryInput) error

	// DeleteEntry permanently removes the entry.
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}
