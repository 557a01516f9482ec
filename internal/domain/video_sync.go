package domain

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const (
	jobVideoSync         = "video-sync"
	DefaultSyncLimit     = 50
	DefaultChannelHandle = "@planbmusickr"
)

type Discovery struct {
	Videos   []models.VideoCandidate `json:"videos"`
	Total    int                     `json:"total"`
	Existing int                     `json:"existing"`
}

type CommitResult struct {
	Added  int `json:"added"`
	Failed int `json:"failed"`
}

type VideoSync struct {
	platform ports.VideoPlatform
	videos   *VideoService
	queue    *WriteQueue
	progress ports.ProgressSink
	handle   string
	limit    int
	log      *logger.ZapLogger
}

type VideoSyncConfig struct {
	ChannelHandle string
	Limit         int
}

// NewVideoSync accepts a nil platform; discovery then reports
// ErrPlatformUnavailable while commit keeps working.
func NewVideoSync(
	platform ports.VideoPlatform,
	videos *VideoService,
	queue *WriteQueue,
	progress ports.ProgressSink,
	cfg VideoSyncConfig,
	log *logger.ZapLogger,
) *VideoSync {
	if cfg.ChannelHandle == "" {
		cfg.ChannelHandle = DefaultChannelHandle
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultSyncLimit
	}
	return &VideoSync{
		platform: platform,
		videos:   videos,
		queue:    queue,
		progress: progressOrNop(progress),
		handle:   cfg.ChannelHandle,
		limit:    cfg.Limit,
		log:      log,
	}
}

// Discover lists the channel uploads and marks the ones already stored. It
// never writes; any upstream failure aborts the whole discovery.
func (s *VideoSync) Discover(ctx context.Context) (Discovery, error) {
	if s.platform == nil {
		return Discovery{}, ErrPlatformUnavailable
	}

	playlistID, err := s.platform.UploadsPlaylist(ctx, s.handle)
	if err != nil {
		return Discovery{}, fmt.Errorf("resolve channel %s: %w", s.handle, err)
	}

	items, err := s.platform.PlaylistVideos(ctx, playlistID, s.limit)
	if err != nil {
		return Discovery{}, fmt.Errorf("list uploads: %w", err)
	}

	known, err := s.videos.ExternalIDs(ctx)
	if err != nil {
		return Discovery{}, err
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.VideoID)
	}
	details, err := s.platform.VideoDetails(ctx, ids)
	if err != nil {
		return Discovery{}, fmt.Errorf("video details: %w", err)
	}

	out := Discovery{Videos: make([]models.VideoCandidate, 0, len(items))}
	for _, it := range items {
		c := models.VideoCandidate{
			VideoID:     it.VideoID,
			URL:         watchURL(it.VideoID),
			Title:       it.Title,
			Description: "",
			Thumbnail:   it.Thumbnail,
			IsExisting:  known[it.VideoID],
			PublishedAt: it.PublishedAt,
		}
		if d, ok := details[it.VideoID]; ok {
			if d.Title != "" {
				c.Title = d.Title
			}
			c.Description = d.Description
		}
		if c.IsExisting {
			out.Existing++
		}
		out.Videos = append(out.Videos, c)
	}
	out.Total = len(out.Videos)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "video discovery",
		Fields:  map[string]any{"channel": s.handle, "total": out.Total, "existing": out.Existing},
	})
	return out, nil
}

// Commit stores the selected candidates that are not stored yet. Known ids
// and repeats inside the selection are skipped silently.
func (s *VideoSync) Commit(ctx context.Context, selected []models.VideoCandidate, roomID string) (CommitResult, error) {
	known, err := s.videos.ExternalIDs(ctx)
	if err != nil {
		return CommitResult{}, err
	}

	fresh := make([]models.VideoCandidate, 0, len(selected))
	for _, c := range selected {
		if c.VideoID == "" || known[c.VideoID] {
			continue
		}
		known[c.VideoID] = true
		fresh = append(fresh, c)
	}

	publish := func(b BatchResult, final bool) {
		s.progress.Publish(ports.ProgressEvent{
			RoomID: roomID,
			Job:    jobVideoSync,
			Done:   b.Succeeded,
			Failed: b.Failed,
			Total:  len(fresh),
			Final:  final,
		})
	}

	batch, err := s.queue.Run(ctx, len(fresh), func(ctx context.Context, i int) error {
		_, err := s.videos.CreateFromCandidate(ctx, fresh[i])
		if err != nil {
			s.log.Log(logger.LogEntry{
				Level:   "error",
				Message: "video add failed",
				Fields:  map[string]any{"videoId": fresh[i].VideoID},
				Error:   err,
			})
		}
		return err
	}, func(b BatchResult) { publish(b, false) })
	publish(batch, true)

	res := CommitResult{Added: batch.Succeeded, Failed: batch.Failed}
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "videos committed",
		Fields: map[string]any{
			"selected": len(selected),
			"added":    res.Added,
			"failed":   res.Failed,
		},
	})
	if err != nil {
		return res, fmt.Errorf("commit interrupted: %w", err)
	}
	return res, nil
}
