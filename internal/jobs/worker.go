package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"gorm.io/gorm"

	"pagepouch/internal/logger"
)

type Worker struct {
	ID     string
	Repo   *Repo
	DB     *gorm.DB
	Client *http.Client
	Log    logger.Logger
}

type bookmarkRow struct {
	ID        uint64     `gorm:"column:id"`
	UserID    uint64     `gorm:"column:user_id"`
	URL       string     `gorm:"column:url"`
	Archived  bool       `gorm:"column:archived"`
	LinkOK    *bool      `gorm:"column:link_ok"`
	CheckedAt *time.Time `gorm:"column:checked_at"`
}

func (bookmarkRow) TableName() string { return "bookmarks" }

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				w.Log.Error("worker claim failed", logger.Err(err))
				continue
			}
			if job == nil {
				continue
			}
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job *Job) {
	switch job.Type {
	case TypeLinkCheck:
		w.handleLinkCheck(ctx, job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleLinkCheck(ctx context.Context, job *Job) {
	type payload struct {
		BookmarkID uint64 `json:"bookmark_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	var b bookmarkRow
	if err := w.DB.
		Where("id=? AND user_id=?", p.BookmarkID, job.UserID).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// bookmark deleted before the check ran
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	if b.Archived {
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	ok, err := w.probe(ctx, b.URL)
	if err != nil {
		// transient network failures get another attempt
		w.retry(job, err.Error())
		return
	}

	now := time.Now()
	if err := w.DB.Model(&bookmarkRow{}).
		Where("id=?", b.ID).
		Updates(map[string]any{"link_ok": ok, "checked_at": now}).Error; err != nil {
		w.retry(job, "db write error")
		return
	}

	w.Log.Info("link checked",
		logger.Uint64("bookmark_id", b.ID),
		logger.String("url", b.URL),
		logger.Bool("ok", ok))
	_ = w.Repo.MarkDone(job.ID)
}

// probe issues a HEAD request, falling back to GET for servers that
// reject HEAD. A response, even an error status, settles the check;
// only transport failures return an error.
func (w *Worker) probe(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		// unfetchable URL is a settled "dead", not a retry
		return false, nil
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return false, err
	}
	_ = resp.Body.Close()

	if resp.StatusCode == http.StatusMethodNotAllowed {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return false, nil
		}
		resp, err = w.Client.Do(req)
		if err != nil {
			return false, err
		}
		_ = resp.Body.Close()
	}

	return resp.StatusCode < 400, nil
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
