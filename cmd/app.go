package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/config"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/infra"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"go.uber.org/zap"
)

// app holds the wired services shared by every command.
type app struct {
	cfg *config.Config
	log *logger.ZapLogger
	kv  ports.KVStore

	progress *domain.ProgressBus
	albums   *domain.AlbumService
	importer *domain.AlbumImporter
	videos   *domain.VideoService
	sync     *domain.VideoSync
	banners  *domain.BannerService
	popups   *domain.PopupService
	messages *domain.MessageService
	faqs     *domain.FAQService
	dash     *domain.DashboardService

	closers []func()
}

func newLogger() (*logger.ZapLogger, func()) {
	zcore, err := zap.NewProduction()
	if err != nil {
		zcore = zap.NewNop()
	}
	return logger.NewZapLogger(zcore.Sugar()), func() { _ = zcore.Sync() }
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newApp opens the configured store and wires the services. A non-nil kv
// overrides the configured store (dry runs).
func newApp(ctx context.Context, cfg *config.Config, zl *logger.ZapLogger, kv ports.KVStore) (*app, error) {
	a := &app{cfg: cfg, log: zl}

	if kv == nil {
		store, closeFn, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		kv = store
		a.closers = append(a.closers, closeFn)
	}
	a.kv = kv

	platform, err := openPlatform(ctx, cfg, zl)
	if err != nil {
		a.Close()
		return nil, err
	}

	ids := domain.NewIDGen(time.Now)
	a.progress = domain.NewProgressBus(256)

	a.albums = domain.NewAlbumService(kv, ids, zl)
	a.importer = domain.NewAlbumImporter(a.albums, domain.NewWriteQueue(0), a.progress, zl)
	a.videos = domain.NewVideoService(kv, ids, zl)
	a.sync = domain.NewVideoSync(
		platform,
		a.videos,
		domain.NewWriteQueue(cfg.Queue.SyncWriteDelay),
		a.progress,
		domain.VideoSyncConfig{ChannelHandle: cfg.YouTube.ChannelHandle, Limit: cfg.YouTube.MaxResults},
		zl,
	)
	a.banners = domain.NewBannerService(kv, ids)
	a.popups = domain.NewPopupService(kv, ids)
	a.messages = domain.NewMessageService(kv, ids, zl)
	a.faqs = domain.NewFAQService(kv, ids, domain.NewWriteQueue(cfg.Queue.FAQSeedDelay), zl)
	a.dash = domain.NewDashboardService(a.albums, a.videos, a.banners, a.popups, a.messages, a.faqs)

	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.KVStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		kv, err := infra.OpenSQLiteKV(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	case config.DriverMemory:
		return infra.NewMemoryKV(), func() {}, nil
	default:
		pool, err := infra.NewPgxPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return infra.NewPostgresKV(pool), pool.Close, nil
	}
}

// openPlatform returns a nil interface when no API key is configured so
// discovery reports the platform as unavailable.
func openPlatform(ctx context.Context, cfg *config.Config, zl *logger.ZapLogger) (ports.VideoPlatform, error) {
	if cfg.YouTube.APIKey == "" {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "YOUTUBE_API_KEY is not set; video sync disabled",
		})
		return nil, nil
	}
	yt, err := infra.NewYouTubeClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		return nil, err
	}
	return yt, nil
}

// sessionStore prefers Redis when configured. The sweeper is returned only
// for the KV-backed store; Redis expires keys itself.
func (a *app) sessionStore(ctx context.Context) (ports.SessionStore, *infra.KVSessionStore, error) {
	if a.cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedisClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		return infra.NewRedisSessionStore(rdb, time.Now), nil, nil
	}
	kvs := infra.NewKVSessionStore(a.kv)
	return kvs, kvs, nil
}
