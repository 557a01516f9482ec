package ports

import (
	"context"

	"github.com/Vovarama1992/planbmusic/internal/models"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AdminSession, error)
	Verify(ctx context.Context, token string) (*models.AdminSession, error)
	Logout(ctx context.Context, token string) error
}

// SessionStore keeps admin sessions apart from business records. Get of an
// unknown token returns nil, nil.
type SessionStore interface {
	Get(ctx context.Context, token string) (*models.AdminSession, error)
	Set(ctx context.Context, s *models.AdminSession) error
	Delete(ctx context.Context, token string) error
}
