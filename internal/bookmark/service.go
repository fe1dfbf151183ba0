// Package bookmark holds the tagged-bookmark store and the search
// executor that runs parsed queries against it.
package bookmark

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"pagepouch/internal/jobs"
)

var ErrNotFound = errors.New("not found")

const DefaultPageSize = 20

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	URL         string
	Title       string
	Description string
	Tags        []string
}

// NormalizeTag is the canonical form used for storage and lookup.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create inserts a bookmark together with its tag links in one
// transaction. Tags are get-or-create by normalized name; names that
// are empty after trimming are skipped. A dead-link check job is
// enqueued in the same transaction, so a failure anywhere leaves
// nothing behind.
func (s *Service) Create(ctx context.Context, userID uint64, in CreateInput) (uint64, error) {
	var bookmarkID uint64

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b := Bookmark{
			UserID:      userID,
			URL:         in.URL,
			Title:       in.Title,
			Description: in.Description,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		bookmarkID = b.ID

		for _, name := range in.Tags {
			name = NormalizeTag(name)
			if name == "" {
				continue
			}
			tagID, err := getOrCreateTag(tx, userID, name)
			if err != nil {
				return err
			}
			link := BookmarkTag{BookmarkID: bookmarkID, UserID: userID, TagID: tagID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		payload, _ := json.Marshal(map[string]any{"bookmark_id": bookmarkID})
		j := jobs.Job{
			UserID:  userID,
			Type:    jobs.TypeLinkCheck,
			Payload: payload,
			RunAt:   time.Now(),
			Status:  "PENDING",
		}
		return tx.Create(&j).Error
	})

	return bookmarkID, err
}

func getOrCreateTag(tx *gorm.DB, userID uint64, name string) (uint64, error) {
	var tag Tag
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return tag.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	tag = Tag{UserID: userID, Name: name, CreatedAt: time.Now()}
	if err := tx.Create(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}

// Count returns the number of unarchived bookmarks for pagination.
func (s *Service) Count(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Bookmark{}).
		Where("user_id = ? AND archived = false", userID).
		Count(&n).Error
	return n, err
}

// SetArchived flips the archived flag on a bookmark the user owns.
func (s *Service) SetArchived(ctx context.Context, userID, bookmarkID uint64, archived bool) error {
	res := s.DB.WithContext(ctx).Model(&Bookmark{}).
		Where("id = ? AND user_id = ?", bookmarkID, userID).
		Update("archived", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a bookmark and its tag links. The tags themselves
// survive; CleanupUnusedTags reclaims orphans.
func (s *Service) Delete(ctx context.Context, userID, bookmarkID uint64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b Bookmark
		if err := tx.Where("id = ? AND user_id = ?", bookmarkID, userID).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("bookmark_id = ?", bookmarkID).Delete(&BookmarkTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&b).Error
	})
}
