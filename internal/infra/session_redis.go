package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Vovarama1992/planbmusic/internal/models"
	goredis "github.com/redis/go-redis/v9"
)

// RedisSessionStore lets Redis expire sessions on its own.
type RedisSessionStore struct {
	rdb *goredis.Client
	now func() time.Time
}

func NewRedisClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func NewRedisSessionStore(rdb *goredis.Client, now func() time.Time) *RedisSessionStore {
	if now == nil {
		now = time.Now
	}
	return &RedisSessionStore{rdb: rdb, now: now}
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*models.AdminSession, error) {
	raw, err := s.rdb.Get(ctx, sessionPrefix+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var sess models.AdminSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess *models.AdminSession) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, sess.Token)
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionPrefix+sess.Token, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
