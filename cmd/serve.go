package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/delivery"
	"github.com/Vovarama1992/planbmusic/internal/delivery/ws"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
)

func newServeCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configFlag)
		},
	}
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl, flush := newLogger()
	defer flush()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg, zl, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	sessions, sweeper, err := a.sessionStore(ctx)
	if err != nil {
		return err
	}
	if sweeper != nil {
		go sweeper.RunSweeper(ctx, cfg.Admin.SweepInterval, zl)
	}

	auth := domain.NewAuthService(sessions, domain.Credentials{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, cfg.Admin.SessionTTL, time.Now, zl)

	hub := ws.NewHub(zl)
	go hub.Forward(ctx, a.progress.Events())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           600,
	}))

	delivery.RegisterRoutes(r, cfg.ServicePrefix, cfg.PublicAnonKey, delivery.Handlers{
		Auth:      delivery.NewAuthHandler(auth, zl),
		Albums:    delivery.NewAlbumHandler(a.albums, a.importer, zl),
		Videos:    delivery.NewVideoHandler(a.videos, a.sync, zl),
		Banners:   delivery.NewBannerHandler(a.banners, zl),
		Popups:    delivery.NewPopupHandler(a.popups, zl),
		Messages:  delivery.NewMessageHandler(a.messages, zl),
		FAQs:      delivery.NewFAQHandler(a.faqs, zl),
		Dashboard: delivery.NewDashboardHandler(a.dash, zl),
		Hub:       hub,
	}, zl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "server started",
			Fields: map[string]any{
				"port":   cfg.Port,
				"prefix": cfg.ServicePrefix,
				"store":  cfg.Store.Driver,
			},
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			zl.Log(logger.LogEntry{
				Level:   "error",
				Message: "server crashed",
				Error:   err,
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zl.Log(logger.LogEntry{Level: "info", Message: "server stopped"})
	return nil
}
