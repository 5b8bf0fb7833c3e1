package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dibuiltadi/dashboard-web/internal/api"
	"github.com/dibuiltadi/dashboard-web/internal/core/ports"
	"github.com/dibuiltadi/dashboard-web/internal/infrastructure/session"
	"github.com/dibuiltadi/dashboard-web/internal/infrastructure/upstream"
	"github.com/dibuiltadi/dashboard-web/internal/pkg/config"
	"github.com/dibuiltadi/dashboard-web/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "dashboard-web",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	var store ports.TokenStore
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := session.Connect(ctx, session.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, cfg.Session.CookieName, cfg.Session.TTL, log)
	default:
		store = session.NewCookieStore(cfg.Session.CookieName, cfg.AppSecret, log)
	}

	e := api.NewRouter(gateway, store, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("upstream", cfg.Upstream.BaseURL).Msg("dashboard listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
