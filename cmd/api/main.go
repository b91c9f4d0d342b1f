package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quotewall/backend/internal/api"
	"github.com/quotewall/backend/internal/api/handlers"
	"github.com/quotewall/backend/internal/auth"
	"github.com/quotewall/backend/internal/config"
	"github.com/quotewall/backend/internal/db"
	"github.com/quotewall/backend/internal/logger"
	"github.com/quotewall/backend/internal/metrics"
	"github.com/quotewall/backend/internal/middleware"
	"github.com/quotewall/backend/internal/repository/postgres"
	"github.com/quotewall/backend/internal/services"
	"github.com/quotewall/backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") != "false" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)

	cookies := auth.NewCookieManager(cfg.SessionSecret, cfg.SessionTTL, cfg.Env == "prod")
	authSvc := services.NewAuthService(repos.Users, repos.Sessions, cfg.SessionTTL)
	quoteSvc := services.NewQuoteService(repos.Quotes, repos.Likes)
	adminSvc := services.NewAdminService(repos.Users, repos.Likes)

	sweeper := worker.NewSweeper(repos.Sessions, time.Hour)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:     cfg,
		Session: middleware.NewSessionMiddleware(cookies, repos.Sessions, cfg.SessionTTL),
		Auth:    handlers.NewAuthHandler(authSvc, cookies),
		Quotes:  handlers.NewQuoteHandler(quoteSvc),
		Users:   handlers.NewUserHandler(adminSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
