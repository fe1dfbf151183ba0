package bookmark

import "time"

// Bookmark is a saved page owned by one user. Search and listing only
// ever see unarchived rows unless asked otherwise.
type Bookmark struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"index;not null"`
	URL         string    `gorm:"type:text;not null"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Archived    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index;not null;default:now()"`

	// dead-link check results, written by the worker
	LinkOK    *bool      `gorm:"type:boolean"`
	CheckedAt *time.Time `gorm:"type:timestamptz"`
}

// Tag is a per-user label. Name is trimmed and lowercased at creation,
// unique per user (enforced by a raw index in db.AutoMigrateAndIndexes).
type Tag struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"index;not null"`
	Name      string    `gorm:"index;not null"`
	Color     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// BookmarkTag is the join table between bookmarks and tags.
type BookmarkTag struct {
	BookmarkID uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"index;not null"`
	TagID      uint64 `gorm:"primaryKey"`
}
