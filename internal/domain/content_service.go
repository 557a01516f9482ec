package domain

import (
	"context"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const (
	bannerPrefix  = "banner"
	popupPrefix   = "popup"
	messagePrefix = "message"
)

type BannerService struct {
	recs *records[models.Banner]
}

func NewBannerService(kv ports.KVStore, ids *IDGen) *BannerService {
	return &BannerService{recs: newRecords[models.Banner](kv, bannerPrefix, ids)}
}

func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	return s.recs.list(ctx)
}

// Active returns the first active banner for the page position, or nil.
func (s *BannerService) Active(ctx context.Context, position string) (*models.Banner, error) {
	banners, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range banners {
		if b.IsActive && b.Position == position {
			return &b, nil
		}
	}
	return nil, nil
}

func (s *BannerService) Create(ctx context.Context, in models.Banner) (models.Banner, error) {
	in.ID = s.recs.newID()
	in.CreatedAt = s.recs.ids.Now()
	in.UpdatedAt = nil
	return in, s.recs.put(ctx, in.ID, in)
}

func (s *BannerService) Update(ctx context.Context, id string, patch Patch) (models.Banner, error) {
	return s.recs.merge(ctx, id, patch, nil)
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}

type PopupService struct {
	recs *records[models.Popup]
}

func NewPopupService(kv ports.KVStore, ids *IDGen) *PopupService {
	return &PopupService{recs: newRecords[models.Popup](kv, popupPrefix, ids)}
}

func (s *PopupService) List(ctx context.Context) ([]models.Popup, error) {
	popups, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	newestFirst(popups, func(p models.Popup) time.Time { return p.CreatedAt })
	return popups, nil
}

// Active returns the popups eligible for display right now, newest first.
func (s *PopupService) Active(ctx context.Context) ([]models.Popup, error) {
	popups, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.recs.ids.Now()
	out := make([]models.Popup, 0, len(popups))
	for _, p := range popups {
		if p.VisibleAt(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PopupService) Create(ctx context.Context, in models.Popup) (models.Popup, error) {
	in.ID = s.recs.newID()
	in.CreatedAt = s.recs.ids.Now()
	in.UpdatedAt = nil
	return in, s.recs.put(ctx, in.ID, in)
}

func (s *PopupService) Update(ctx context.Context, id string, patch Patch) (models.Popup, error) {
	return s.recs.merge(ctx, id, patch, nil)
}

func (s *PopupService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}

type MessageService struct {
	recs *records[models.ContactMessage]
	log  *logger.ZapLogger
}

func NewMessageService(kv ports.KVStore, ids *IDGen, log *logger.ZapLogger) *MessageService {
	return &MessageService{recs: newRecords[models.ContactMessage](kv, messagePrefix, ids), log: log}
}

func (s *MessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	msgs, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	newestFirst(msgs, func(m models.ContactMessage) time.Time { return m.CreatedAt })
	return msgs, nil
}

func (s *MessageService) Create(ctx context.Context, in models.ContactMessage) (models.ContactMessage, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return models.ContactMessage{}, invalid("name is required")
	case strings.TrimSpace(in.Email) == "":
		return models.ContactMessage{}, invalid("email is required")
	case strings.TrimSpace(in.Message) == "":
		return models.ContactMessage{}, invalid("message is required")
	}

	in.ID = s.recs.newID()
	in.IsRead = false
	in.CreatedAt = s.recs.ids.Now()
	in.UpdatedAt = nil
	if err := s.recs.put(ctx, in.ID, in); err != nil {
		return models.ContactMessage{}, err
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "contact message received",
		Fields:  map[string]any{"id": in.ID, "subject": in.Subject},
	})
	return in, nil
}

// MarkRead is the only mutation a message allows.
func (s *MessageService) MarkRead(ctx context.Context, id string) (models.ContactMessage, error) {
	return s.recs.merge(ctx, id, Patch{"isRead": []byte("true")}, nil)
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}
