package bookmark

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"

	"pagepouch/internal/search"
)

// Result is one matched bookmark joined with its complete tag-name
// set (sorted, independent of which tags matched) and a recency label.
type Result struct {
	Bookmark Bookmark
	Tags     []string
	Age      string
}

// Search runs a parsed query for one user. Strategy selection:
// an empty query lists unarchived bookmarks by recency; tag filters
// without terms become one exists-subquery per filter (all required);
// terms become per-term predicates combined by the query's logic.
// When terms and tag filters are both present, the tag filters are
// applied as an in-memory pass over the term candidates.
func (s *Service) Search(ctx context.Context, q search.Query, userID uint64, limit, offset int) ([]Result, error) {
	db := s.DB.WithContext(ctx).Model(&Bookmark{}).
		Where("bookmarks.user_id = ? AND bookmarks.archived = false", userID)

	switch {
	case q.IsEmpty():
		// plain listing
	case len(q.Terms) == 0:
		// tag-only: every filter must be satisfied by some tag,
		// each filter independently (no aggregate counting)
		for _, f := range q.TagFilters {
			c := tagFilterCondition(f)
			db = db.Where(c.expr, c.args...)
		}
	default:
		conds := make([]condition, 0, len(q.Terms))
		for _, t := range q.Terms {
			conds = append(conds, termCondition(t))
		}
		c := combine(conds, q.Logic)
		db = db.Where(c.expr, c.args...)
	}

	var rows []Bookmark
	if err := db.Order("bookmarks.created_at desc").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	results, err := s.assemble(ctx, rows)
	if err != nil {
		return nil, err
	}

	if len(q.Terms) > 0 && len(q.TagFilters) > 0 {
		results = filterByTags(results, q.TagFilters)
	}

	return results, nil
}

// List returns the unarchived bookmarks for a user by recency, with
// their tag sets. Equivalent to searching with an empty query.
func (s *Service) List(ctx context.Context, userID uint64, limit, offset int) ([]Result, error) {
	return s.Search(ctx, search.Query{}, userID, limit, offset)
}

type tagSetRow struct {
	BookmarkID uint64
	TagNames   pq.StringArray `gorm:"type:text[]"`
}

// assemble joins bookmarks with their full tag sets in one grouped
// query and computes the age label.
func (s *Service) assemble(ctx context.Context, rows []Bookmark) ([]Result, error) {
	results := make([]Result, 0, len(rows))
	if len(rows) == 0 {
		return results, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, b := range rows {
		ids = append(ids, b.ID)
	}

	var tagRows []tagSetRow
	if err := s.DB.WithContext(ctx).Raw(`
select bt.bookmark_id, array_agg(t.name order by t.name) as tag_names
from bookmark_tags bt
join tags t on t.id = bt.tag_id
where bt.bookmark_id in ?
group by bt.bookmark_id`, ids).Scan(&tagRows).Error; err != nil {
		return nil, err
	}

	tagsByID := make(map[uint64][]string, len(tagRows))
	for _, r := range tagRows {
		tagsByID[r.BookmarkID] = []string(r.TagNames)
	}

	now := time.Now()
	for _, b := range rows {
		results = append(results, Result{
			Bookmark: b,
			Tags:     tagsByID[b.ID],
			Age:      FormatAge(b.CreatedAt, now),
		})
	}
	return results, nil
}

// filterByTags keeps results whose tag set contains every filter
// string as a case-insensitive substring of some tag name.
func filterByTags(results []Result, filters []string) []Result {
	kept := results[:0]
	for _, r := range results {
		if tagSetMatches(r.Tags, filters) {
			kept = append(kept, r)
		}
	}
	return kept
}

func tagSetMatches(tags, filters []string) bool {
	for _, f := range filters {
		f = strings.ToLower(f)
		found := false
		for _, name := range tags {
			if strings.Contains(strings.ToLower(name), f) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
