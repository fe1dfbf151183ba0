package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pagepouch/internal/auth"
	"pagepouch/internal/config"
	"pagepouch/internal/db"
	httpx "pagepouch/internal/http"
	"pagepouch/internal/jobs"
	"pagepouch/internal/logger"
)

func main() {
	cfg, _ := config.Load()

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connect failed", logger.Err(err))
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal("migration failed", logger.Err(err))
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, gdb, jwtSvc)

	// link-check worker
	worker := &jobs.Worker{
		ID:     "worker-1",
		Repo:   &jobs.Repo{DB: gdb},
		DB:     gdb,
		Client: &http.Client{Timeout: cfg.LinkCheckTimeout},
		Log:    log,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("listening", logger.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", logger.Err(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
