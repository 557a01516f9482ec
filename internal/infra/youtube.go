package infra

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const youtubeIDBatch = 50

// YouTubeClient reads a channel's public uploads through the Data API v3.
type YouTubeClient struct {
	svc *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, domain.ErrPlatformUnavailable
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

func (c *YouTubeClient) UploadsPlaylist(ctx context.Context, handle string) (string, error) {
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}
	resp, err := c.svc.Channels.List([]string{"contentDetails", "snippet"}).
		ForHandle(handle).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("youtube channels: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil ||
		resp.Items[0].ContentDetails.RelatedPlaylists == nil ||
		resp.Items[0].ContentDetails.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("%s: %w", handle, domain.ErrChannelNotFound)
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// PlaylistVideos follows page tokens until limit items are collected.
func (c *YouTubeClient) PlaylistVideos(ctx context.Context, playlistID string, limit int) ([]models.PlatformVideo, error) {
	var (
		out   []models.PlatformVideo
		token string
	)
	for len(out) < limit {
		call := c.svc.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(int64(min(limit-len(out), youtubeIDBatch))).
			Context(ctx)
		if token != "" {
			call = call.PageToken(token)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("youtube playlist items: %w", err)
		}
		for _, it := range resp.Items {
			if it.Snippet == nil || it.Snippet.ResourceId == nil || it.Snippet.ResourceId.VideoId == "" {
				continue
			}
			out = append(out, models.PlatformVideo{
				VideoID:     it.Snippet.ResourceId.VideoId,
				Title:       it.Snippet.Title,
				Description: it.Snippet.Description,
				Thumbnail:   pickThumbnail(it.Snippet.Thumbnails),
				PublishedAt: it.Snippet.PublishedAt,
			})
		}
		token = resp.NextPageToken
		if token == "" {
			break
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// VideoDetails fetches full snippets, 50 ids per request.
func (c *YouTubeClient) VideoDetails(ctx context.Context, ids []string) (map[string]models.PlatformVideo, error) {
	out := make(map[string]models.PlatformVideo, len(ids))
	for start := 0; start < len(ids); start += youtubeIDBatch {
		batch := ids[start:min(start+youtubeIDBatch, len(ids))]
		resp, err := c.svc.Videos.List([]string{"snippet"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("youtube videos: %w", err)
		}
		for _, v := range resp.Items {
			if v.Snippet == nil {
				continue
			}
			out[v.Id] = models.PlatformVideo{
				VideoID:     v.Id,
				Title:       v.Snippet.Title,
				Description: v.Snippet.Description,
				Thumbnail:   pickThumbnail(v.Snippet.Thumbnails),
				PublishedAt: v.Snippet.PublishedAt,
			}
		}
	}
	return out, nil
}

func pickThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.High != nil && t.High.Url != "" {
		return t.High.Url
	}
	if t.Medium != nil {
		return t.Medium.Url
	}
	return ""
}
