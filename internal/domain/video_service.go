package domain

import (
	"context"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain/catalog"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const videoPrefix = "video"

type VideoService struct {
	recs *records[models.Video]
	log  *logger.ZapLogger
}

func NewVideoService(kv ports.KVStore, ids *IDGen, log *logger.ZapLogger) *VideoService {
	return &VideoService{
		recs: newRecords[models.Video](kv, videoPrefix, ids),
		log:  log,
	}
}

func (s *VideoService) List(ctx context.Context) ([]models.Video, error) {
	videos, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	newestFirst(videos, func(v models.Video) time.Time { return v.CreatedAt })
	return videos, nil
}

// VideoCatalog is a public page plus the newest featured video, which the
// media page shows above the grid.
type VideoCatalog struct {
	catalog.Page[models.Video]
	Featured *models.Video `json:"featured"`
}

func (s *VideoService) Catalog(ctx context.Context, page int) (VideoCatalog, error) {
	videos, err := s.recs.list(ctx)
	if err != nil {
		return VideoCatalog{}, err
	}

	var featured *models.Video
	for i := range videos {
		v := &videos[i]
		if v.IsFeatured && (featured == nil || v.CreatedAt.After(featured.CreatedAt)) {
			featured = v
		}
	}

	res := VideoCatalog{Page: catalog.Query(videos, catalog.CategoryAll, page, catalog.VideoPageSize)}
	if featured != nil {
		hero := *featured
		res.Featured = &hero
	}
	return res, nil
}

func (s *VideoService) Get(ctx context.Context, id string) (models.Video, error) {
	return s.recs.get(ctx, id)
}

func (s *VideoService) Create(ctx context.Context, in models.Video) (models.Video, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.VideoID = strings.TrimSpace(in.VideoID)
	in.URL = strings.TrimSpace(in.URL)
	if in.VideoID == "" && in.URL == "" {
		return models.Video{}, invalid("videoId or url is required")
	}
	if in.Title == "" {
		return models.Video{}, invalid("title is required")
	}
	if in.URL == "" {
		in.URL = watchURL(in.VideoID)
	}

	in.ID = s.recs.newID()
	in.CreatedAt = s.recs.ids.Now()
	in.UpdatedAt = nil
	if err := s.recs.put(ctx, in.ID, in); err != nil {
		return models.Video{}, err
	}
	return in, nil
}

// CreateFromCandidate stores a discovered video under "video:<millis>_<videoId>".
func (s *VideoService) CreateFromCandidate(ctx context.Context, c models.VideoCandidate) (models.Video, error) {
	url := c.URL
	if url == "" {
		url = watchURL(c.VideoID)
	}
	v := models.Video{
		ID:          s.recs.newID() + "_" + c.VideoID,
		VideoID:     c.VideoID,
		URL:         url,
		Title:       c.Title,
		Description: c.Description,
		Thumbnail:   c.Thumbnail,
		PublishedAt: c.PublishedAt,
		CreatedAt:   s.recs.ids.Now(),
	}
	if err := s.recs.put(ctx, v.ID, v); err != nil {
		return models.Video{}, err
	}
	return v, nil
}

func (s *VideoService) Update(ctx context.Context, id string, patch Patch) (models.Video, error) {
	return s.recs.merge(ctx, id, patch, nil)
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}

// ExternalIDs returns the platform ids already stored.
func (s *VideoService) ExternalIDs(ctx context.Context) (map[string]bool, error) {
	videos, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(videos))
	for _, v := range videos {
		if v.VideoID != "" {
			known[v.VideoID] = true
		}
	}
	return known, nil
}

func watchURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + videoID
}
