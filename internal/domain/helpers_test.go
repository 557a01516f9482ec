package domain_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

// clock is a manually advanced time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var errStoreDown = errors.New("store down")

// failingKV rejects writes whose value contains marker.
type failingKV struct {
	ports.KVStore
	marker []byte
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if bytes.Contains(value, f.marker) {
		return errStoreDown
	}
	return f.KVStore.Set(ctx, key, value)
}
