package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pagepouch/internal/auth"
	"pagepouch/internal/bookmark"
)

type TagHandler struct {
	Svc *bookmark.Service
}

type tagDTO struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	tags, err := h.Svc.ListTags(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]tagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagDTO{Name: t.Name, Color: t.Color})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (h *TagHandler) Popular(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	limit := 20
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	tags, err := h.Svc.PopularTags(r.Context(), uid, limit)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tags)
}

// Suggest serves tag autocomplete while the user is typing a #tag.
func (h *TagHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	fragment := strings.TrimSpace(r.URL.Query().Get("q"))
	if fragment == "" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
		return
	}

	suggestions, err := h.Svc.SuggestTags(r.Context(), uid, fragment, 10)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(suggestions)
}

type renameTagReq struct {
	Old string `json:"old"`
	New string `json:"new"`
}

func (h *TagHandler) Rename(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req renameTagReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if bookmark.NormalizeTag(req.Old) == "" || bookmark.NormalizeTag(req.New) == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	switch err := h.Svc.RenameTag(r.Context(), uid, req.Old, req.New); {
	case errors.Is(err, bookmark.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

type colorTagReq struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

func (h *TagHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req colorTagReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if bookmark.NormalizeTag(req.Name) == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	switch err := h.Svc.SetTagColor(r.Context(), uid, req.Name, req.Color); {
	case errors.Is(err, bookmark.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *TagHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	removed, err := h.Svc.CleanupUnusedTags(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"removed": removed})
}
