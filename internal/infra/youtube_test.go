package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestYouTube(t *testing.T, h http.Handler) *YouTubeClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewYouTubeClient(context.Background(), "test-key", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewYouTubeClientWithoutKey(t *testing.T) {
	_, err := NewYouTubeClient(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrPlatformUnavailable)
}

func TestYouTubeUploadsPlaylist(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/channels", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		if r.URL.Query().Get("forHandle") != "@planbmusickr" {
			writeJSON(t, w, map[string]any{"items": []any{}})
			return
		}
		writeJSON(t, w, map[string]any{
			"items": []any{map[string]any{
				"id": "UC123",
				"contentDetails": map[string]any{
					"relatedPlaylists": map[string]any{"uploads": "UU123"},
				},
			}},
		})
	})
	c := newTestYouTube(t, mux)

	id, err := c.UploadsPlaylist(context.Background(), "planbmusickr")
	require.NoError(t, err)
	assert.Equal(t, "UU123", id)

	_, err = c.UploadsPlaylist(context.Background(), "@nobody")
	require.ErrorIs(t, err, domain.ErrChannelNotFound)
}

func TestYouTubePlaylistVideosFollowsPages(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "UU123", r.URL.Query().Get("playlistId"))
		item := func(id string) map[string]any {
			return map[string]any{"snippet": map[string]any{
				"title":       "title " + id,
				"publishedAt": "2024-05-01T00:00:00Z",
				"resourceId":  map[string]any{"videoId": id},
				"thumbnails": map[string]any{
					"medium": map[string]any{"url": "https://img/" + id + "/mq.jpg"},
					"high":   map[string]any{"url": "https://img/" + id + "/hq.jpg"},
				},
			}}
		}
		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(t, w, map[string]any{"items": []any{item("a"), item("b")}, "nextPageToken": "p2"})
			return
		}
		writeJSON(t, w, map[string]any{"items": []any{item("c"), item("d")}})
	})
	c := newTestYouTube(t, mux)

	got, err := c.PlaylistVideos(context.Background(), "UU123", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].VideoID)
	assert.Equal(t, "c", got[2].VideoID)
	assert.Equal(t, "https://img/a/hq.jpg", got[0].Thumbnail)
	assert.EqualValues(t, 2, calls.Load())
}

func TestYouTubeVideoDetailsBatches(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/videos", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		ids := strings.Split(strings.Join(r.URL.Query()["id"], ","), ",")
		assert.LessOrEqual(t, len(ids), 50)
		items := make([]any, 0, len(ids))
		for _, id := range ids {
			items = append(items, map[string]any{
				"id":      id,
				"snippet": map[string]any{"title": "full " + id, "description": "desc " + id},
			})
		}
		writeJSON(t, w, map[string]any{"items": items})
	})
	c := newTestYouTube(t, mux)

	ids := make([]string, 120)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%03d", i)
	}
	got, err := c.VideoDetails(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, got, 120)
	assert.Equal(t, "desc v119", got["v119"].Description)
	assert.EqualValues(t, 3, calls.Load())
}

func TestYouTubeUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/youtube/v3/channels", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quota"}}`, http.StatusForbidden)
	})
	c := newTestYouTube(t, mux)

	_, err := c.UploadsPlaylist(context.Background(), "@planbmusickr")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrChannelNotFound)
}
