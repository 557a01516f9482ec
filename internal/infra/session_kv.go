package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const sessionPrefix = "session:"

// KVSessionStore keeps admin sessions as "session:<token>" rows next to the
// business records.
type KVSessionStore struct {
	kv ports.KVStore
}

func NewKVSessionStore(kv ports.KVStore) *KVSessionStore {
	return &KVSessionStore{kv: kv}
}

func (s *KVSessionStore) Get(ctx context.Context, token string) (*models.AdminSession, error) {
	raw, err := s.kv.Get(ctx, sessionPrefix+token)
	if err != nil || raw == nil {
		return nil, err
	}
	var sess models.AdminSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *KVSessionStore) Set(ctx context.Context, sess *models.AdminSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.kv.Set(ctx, sessionPrefix+sess.Token, raw)
}

func (s *KVSessionStore) Delete(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, sessionPrefix+token)
}

// Sweep deletes every session expired at now and reports how many went.
func (s *KVSessionStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	entries, err := s.kv.GetByPrefix(ctx, sessionPrefix)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		var sess models.AdminSession
		if err := json.Unmarshal(e.Value, &sess); err == nil && !sess.Expired(now) {
			continue
		}
		if err := s.kv.Delete(ctx, e.Key); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// RunSweeper sweeps on every tick until ctx is done.
func (s *KVSessionStore) RunSweeper(ctx context.Context, every time.Duration, zl *logger.ZapLogger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := s.Sweep(ctx, now)
			if err != nil {
				zl.Log(logger.LogEntry{
					Level:   "error",
					Message: "session sweep failed",
					Error:   err,
				})
				continue
			}
			if n > 0 {
				zl.Log(logger.LogEntry{
					Level:   "info",
					Message: "expired sessions removed",
					Fields:  map[string]any{"count": n},
				})
			}
		}
	}
}
