package ports

import (
	"context"

	"github.com/Vovarama1992/planbmusic/internal/models"
)

type VideoPlatform interface {
	// UploadsPlaylist resolves a channel handle to its uploads listing id.
	UploadsPlaylist(ctx context.Context, handle string) (string, error)
	PlaylistVideos(ctx context.Context, playlistID string, limit int) ([]models.PlatformVideo, error)
	// VideoDetails returns full snippets keyed by video id.
	VideoDetails(ctx context.Context, ids []string) (map[string]models.PlatformVideo, error)
}
