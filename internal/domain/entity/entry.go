// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Entry represents a single journal record belonging to exactly one user.
// Entries are only ever visible or mutable through operations scoped to their
// owner; other users cannot distinguish someone else's entry from a missing one.
type Entry struct {
	ID        int64     `json:"id"`         // Surrogate key assigned by the database.
	UserID    int64     `json:"-"`          // The ID of the user who owns this entry.
	Title     string    `json:"title"`      // Entry title; may be empty.
	Content   string    `json:"content"`    // Entry body; may be empty.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this entry was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
