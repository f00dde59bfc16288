package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cargomatters/backend/internal/admins"
	"github.com/cargomatters/backend/internal/config"
	"github.com/cargomatters/backend/internal/db"
	"github.com/cargomatters/backend/internal/mailer"
	"github.com/cargomatters/backend/internal/migrations"
	rediscli "github.com/cargomatters/backend/internal/redis"
	"github.com/cargomatters/backend/internal/router"
	"github.com/cargomatters/backend/internal/security"
	"github.com/cargomatters/backend/internal/transporters"
)

func main() {
	config.LoadDotEnvUp(3)

	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal("postgres connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.NewRunner(pool).Up(ctx); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	rdb, err := rediscli.New(cfg.Redis)
	if err != nil {
		// rate limiting and stats caching degrade gracefully without Redis
		logger.Warn("redis unavailable, continuing without it", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rediscli.Close(rdb)
	}

	jwtm := security.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.CompanyJWTTTL, cfg.Security.AdminJWTTTL)
	mail := mailer.NewClient(cfg.SMTP, logger)

	var cache transporters.Cache
	if rdb != nil {
		cache = rediscli.NewCache(rdb)
	}

	svc := transporters.NewService(transporters.NewRepo(pool), mail, cache, logger)
	adminRepo := admins.NewRepo(pool)

	engine := router.New(router.Dependencies{
		Service:      svc,
		Admins:       adminRepo,
		JWT:          jwtm,
		Redis:        rdb,
		Logger:       logger,
		RateLimitRPS: cfg.Security.RateLimitRPS,
		CronSecret:   cfg.Security.CronSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "local" {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
