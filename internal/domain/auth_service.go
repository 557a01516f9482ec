package domain

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultSessionTTL = 24 * time.Hour

type Credentials struct {
	Username string
	Password string
	// PasswordHash is a bcrypt hash; when set, Password is ignored.
	PasswordHash string
}

type authService struct {
	sessions ports.SessionStore
	creds    Credentials
	ttl      time.Duration
	now      func() time.Time
	log      *logger.ZapLogger
}

func NewAuthService(sessions ports.SessionStore, creds Credentials, ttl time.Duration, now func() time.Time, log *logger.ZapLogger) ports.AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &authService{
		sessions: sessions,
		creds:    creds,
		ttl:      ttl,
		now:      now,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.AdminSession, error) {
	if !s.match(username, password) {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "admin login rejected",
			Fields:  map[string]any{"username": username},
			Error:   ErrUnauthorized,
		})
		return nil, ErrUnauthorized
	}

	now := s.now()
	sess := &models.AdminSession{
		Token:     "session_" + uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *authService) match(username, password string) bool {
	if s.creds.Username == "" || username != s.creds.Username {
		return false
	}
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	if s.creds.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}

// Verify resolves a live session. An expired session is removed on sight.
func (s *authService) Verify(ctx context.Context, token string) (*models.AdminSession, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrSessionInvalid
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionInvalid
	}
	if sess.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return nil, ErrSessionExpired
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
