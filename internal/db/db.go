package db

import (
	"fmt"

	"pagepouch/internal/auth"
	"pagepouch/internal/bookmark"
	"pagepouch/internal/jobs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&bookmark.Bookmark{},
		&bookmark.Tag{},
		&bookmark.BookmarkTag{},
		&jobs.Job{},
		&auth.User{},
	); err != nil {
		return err
	}

	// Tags are unique per user by normalized name
	if err := gdb.Exec(`create unique index if not exists uq_tags_user_name on tags(user_id, name);`).Error; err != nil {
		return err
	}

	// Join table lookup by user and tag
	if err := gdb.Exec(`create index if not exists idx_bookmark_tags_user_tag on bookmark_tags(user_id, tag_id);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_bookmarks_user_created on bookmarks(user_id, created_at desc);`,
		`create index if not exists idx_bookmarks_user_archived on bookmarks(user_id, archived);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
