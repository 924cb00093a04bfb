package model

import (
	"time"
)

// EntryModel mirrors the 'entries' table. Rows are permanently removed on
// delete; there is no soft-delete column.
type EntryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index:idx_entries_user_created,priority:1"`
	Title     string `gorm:"type:text;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_entries_user_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntryModel) TableName() string {
	return "entries"
}
