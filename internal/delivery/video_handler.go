package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/go-chi/chi/v5"
)

type VideoHandler struct {
	videos *domain.VideoService
	sync   *domain.VideoSync
	log    *logger.ZapLogger
}

func NewVideoHandler(videos *domain.VideoService, sync *domain.VideoSync, log *logger.ZapLogger) *VideoHandler {
	return &VideoHandler{
		videos: videos,
		sync:   sync,
		log:    log,
	}
}

func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch videos", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"videos": videos})
}

// GET /videos/catalog?page=
func (h *VideoHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	page, err := h.videos.Catalog(r.Context(), pageParam(r))
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch videos", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	video, err := h.videos.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch video", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"video": video})
}

func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Video
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create video", err)
		return
	}
	video, err := h.videos.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create video", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"video": video})
}

func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.log, "Failed to update video", err)
		return
	}
	video, err := h.videos.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, "Failed to update video", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"video": video})
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.videos.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete video", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// POST /videos/sync: discovery only, nothing is stored.
func (h *VideoHandler) Sync(w http.ResponseWriter, r *http.Request) {
	found, err := h.sync.Discover(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to sync videos from YouTube", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"videos":   found.Videos,
		"total":    found.Total,
		"existing": found.Existing,
	})
}

// POST /videos/bulk-add {"videos": [...]}
func (h *VideoHandler) BulkAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Videos json.RawMessage `json:"videos"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	var selected []models.VideoCandidate
	if len(req.Videos) == 0 || req.Videos[0] != '[' || json.Unmarshal(req.Videos, &selected) != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	ctx := context.WithoutCancel(r.Context())
	res, err := h.sync.Commit(ctx, selected, r.URL.Query().Get("roomID"))
	if err != nil {
		writeError(w, r, h.log, "Failed to add videos", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("%d개 영상이 추가되었습니다.", res.Added),
		"added":   res.Added,
		"failed":  res.Failed,
	})
}
