package http

import (
	"net/http"

	"pagepouch/internal/auth"
	"pagepouch/internal/bookmark"
	"pagepouch/internal/config"
	"pagepouch/internal/http/handler"
	mw "pagepouch/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	svc := &bookmark.Service{DB: db}
	bh := &handler.BookmarkHandler{Svc: svc}
	br := &handler.BookmarkReadHandler{Svc: svc}
	th := &handler.TagHandler{Svc: svc}

	r.Route("/bookmarks", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", bh.Create)
		r.Get("/", br.List)
		r.Get("/count", br.Count)

		r.Post("/{id}/archive", bh.Archive)
		r.Post("/{id}/restore", bh.Restore)
		r.Delete("/{id}", bh.Delete)
	})

	r.Route("/tags", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", th.List)
		r.Get("/popular", th.Popular)
		r.Get("/suggest", th.Suggest)
		r.Put("/rename", th.Rename)
		r.Put("/color", th.SetColor)
		r.Post("/cleanup", th.Cleanup)
	})

	return r
}
