package bookmark

import (
	"context"

	"github.com/sahilm/fuzzy"
)

// TagInfo is a tag as shown in the tag list.
type TagInfo struct {
	Name  string
	Color *string
}

// TagUsage is a tag with how many unarchived bookmarks carry it.
type TagUsage struct {
	Name  string
	Count int64
}

// TagSuggestion is a fuzzy-ranked autocomplete candidate.
type TagSuggestion struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ListTags returns the distinct tags attached to a user's unarchived
// bookmarks, by name.
func (s *Service) ListTags(ctx context.Context, userID uint64) ([]TagInfo, error) {
	var out []TagInfo
	err := s.DB.WithContext(ctx).Raw(`
select distinct t.name, t.color
from tags t
join bookmark_tags bt on t.id = bt.tag_id
join bookmarks b on b.id = bt.bookmark_id
where b.user_id = ? and b.archived = false
order by t.name`, userID).Scan(&out).Error
	return out, err
}

// PopularTags returns the user's most-used tags with usage counts.
func (s *Service) PopularTags(ctx context.Context, userID uint64, limit int) ([]TagUsage, error) {
	var out []TagUsage
	err := s.DB.WithContext(ctx).Raw(`
select t.name, count(*) as count
from tags t
join bookmark_tags bt on t.id = bt.tag_id
join bookmarks b on b.id = bt.bookmark_id
where b.user_id = ? and b.archived = false
group by t.name
order by count desc, t.name
limit ?`, userID, limit).Scan(&out).Error
	return out, err
}

// SuggestTags fuzzy-ranks the user's tag names against a typed
// fragment, best match first.
func (s *Service) SuggestTags(ctx context.Context, userID uint64, fragment string, limit int) ([]TagSuggestion, error) {
	tags, err := s.ListTags(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	matches := fuzzy.Find(fragment, names)
	out := make([]TagSuggestion, 0, len(matches))
	for _, m := range matches {
		if len(out) >= limit {
			break
		}
		out = append(out, TagSuggestion{Name: m.Str, Score: m.Score})
	}
	return out, nil
}

// RenameTag renames one of the user's tags. Both names are normalized;
// the join table references the tag id, so every bookmark follows.
func (s *Service) RenameTag(ctx context.Context, userID uint64, oldName, newName string) error {
	oldName = NormalizeTag(oldName)
	newName = NormalizeTag(newName)

	res := s.DB.WithContext(ctx).Model(&Tag{}).
		Where("user_id = ? AND name = ?", userID, oldName).
		Update("name", newName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetTagColor updates the display color of one of the user's tags.
func (s *Service) SetTagColor(ctx context.Context, userID uint64, name string, color *string) error {
	res := s.DB.WithContext(ctx).Model(&Tag{}).
		Where("user_id = ? AND name = ?", userID, NormalizeTag(name)).
		Update("color", color)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CleanupUnusedTags deletes the user's tags that no bookmark
// references anymore and reports how many were removed.
func (s *Service) CleanupUnusedTags(ctx context.Context, userID uint64) (int64, error) {
	res := s.DB.WithContext(ctx).Exec(`
delete from tags
where user_id = ?
and id not in (select distinct tag_id from bookmark_tags)`, userID)
	return res.RowsAffected, res.Error
}
