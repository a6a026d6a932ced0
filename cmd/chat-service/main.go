package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ugc-collab/chat-service/config"
	"github.com/ugc-collab/chat-service/internal/pg"
	"github.com/ugc-collab/chat-service/internal/postgres"
	"github.com/ugc-collab/chat-service/internal/security"
	"github.com/ugc-collab/chat-service/internal/service"
	httpx "github.com/ugc-collab/chat-service/internal/transport/http"
	"github.com/ugc-collab/chat-service/internal/transport/ws"
	"github.com/ugc-collab/chat-service/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting chat-service",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// --- repos ---
	userRepo := postgres.NewUserRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	collabRepo := postgres.NewCollaborationRepository(pool)

	// --- services ---
	codec := security.NewTokenCodec(cfg.Security.JWT.Secret, cfg.Security.JWT.AccessTTL, cfg.Security.JWT.ClockSkew)
	authSvc := service.NewAuthService(codec, userRepo)
	chatSvc := service.NewChatService(chatRepo, collabRepo)

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, authSvc, chatSvc)
	wsServer.SetPingInterval(cfg.WS.PingInterval)
	wsServer.SetSendBuffer(cfg.WS.SendBuffer)
	wsServer.SetMaxFrameSize(cfg.WS.MaxFrameSize)

	// --- HTTP ---
	handler := httpx.NewHandler(chatSvc)
	router := httpx.NewRouter(handler, authSvc, wsServer)
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
		// ReadTimeout здесь не ставим: под тем же сервером живут
		// долгоживущие ws-соединения.
		IdleTimeout: 0,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
