// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core identity in the system, representing one journal account.
// PasswordHash is an opaque salted hash; the plaintext password never leaves
// the auth use case.
type User struct {
	ID           int64     // Surrogate key assigned by the database.
	Username     string    // Unique login identifier chosen at signup.
	PasswordHash string    // One-way salted credential hash.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
