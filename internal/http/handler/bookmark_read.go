package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pagepouch/internal/auth"
	"pagepouch/internal/bookmark"
	"pagepouch/internal/search"
)

type BookmarkReadHandler struct {
	Svc *bookmark.Service
}

type bookmarkDTO struct {
	ID          uint64     `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Age         string     `json:"age"`
	CreatedAt   time.Time  `json:"created_at"`
	LinkOK      *bool      `json:"link_ok,omitempty"`
	CheckedAt   *time.Time `json:"checked_at,omitempty"`
}

// List serves GET /bookmarks. The q parameter runs through the query
// parser (words, "phrases", #tags, and/or); the tag parameter is a
// pre-committed filter that bypasses the tokenizer; page is 1-based.
func (h *BookmarkReadHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	q := search.Parse(r.URL.Query().Get("q"))
	if tag := r.URL.Query().Get("tag"); tag != "" {
		q.AddTagFilter(tag)
	}

	page := int64(1)
	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			page = n
		}
	}
	limit := bookmark.DefaultPageSize
	offset := int(page-1) * limit

	var results []bookmark.Result
	var err error
	if q.IsEmpty() {
		results, err = h.Svc.List(r.Context(), uid, limit, offset)
	} else {
		results, err = h.Svc.Search(r.Context(), q, uid, limit, offset)
	}
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]bookmarkDTO, 0, len(results))
	for _, res := range results {
		out = append(out, bookmarkDTO{
			ID:          res.Bookmark.ID,
			URL:         res.Bookmark.URL,
			Title:       res.Bookmark.Title,
			Description: res.Bookmark.Description,
			Tags:        res.Tags,
			Age:         res.Age,
			CreatedAt:   res.Bookmark.CreatedAt,
			LinkOK:      res.Bookmark.LinkOK,
			CheckedAt:   res.Bookmark.CheckedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// Count serves GET /bookmarks/count for building pagination links.
func (h *BookmarkReadHandler) Count(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	n, err := h.Svc.Count(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":     n,
		"page_size": bookmark.DefaultPageSize,
	})
}
