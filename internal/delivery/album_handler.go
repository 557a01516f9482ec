package delivery

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/go-chi/chi/v5"
)

const maxImportBytes = 32 << 20

type AlbumHandler struct {
	albums   *domain.AlbumService
	importer *domain.AlbumImporter
	log      *logger.ZapLogger
}

func NewAlbumHandler(albums *domain.AlbumService, importer *domain.AlbumImporter, log *logger.ZapLogger) *AlbumHandler {
	return &AlbumHandler{
		albums:   albums,
		importer: importer,
		log:      log,
	}
}

// GET /albums?q=&sort=
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	albums, err := h.albums.List(r.Context(), domain.AlbumListOptions{
		Query: q.Get("q"),
		Sort:  domain.AlbumSort(q.Get("sort")),
	})
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch albums", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"albums": albums})
}

// GET /albums/catalog?category=&page=
func (h *AlbumHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.albums.Catalog(r.Context(), q.Get("category"), pageParam(r))
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch albums", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	album, err := h.albums.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch album", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"album": album})
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Album
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create album", err)
		return
	}
	album, err := h.albums.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create album", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"album": album})
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.log, "Failed to update album", err)
		return
	}
	album, err := h.albums.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, "Failed to update album", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"album": album})
}

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.albums.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete album", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// POST /albums/bulk-delete
func (h *AlbumHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, "Failed to delete albums", err)
		return
	}
	n, err := h.albums.DeleteMany(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, h.log, "Failed to delete albums", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": n})
}

// POST /albums/import (multipart "file", optional ?roomID=)
func (h *AlbumHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		writeError(w, r, h.log, "Failed to import albums", invalidBody(err))
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "file is required"})
		return
	}
	defer file.Close()

	ctx := context.WithoutCancel(r.Context())
	summary, err := h.importer.Import(ctx, hdr.Filename, file, r.URL.Query().Get("roomID"))
	if err != nil {
		writeError(w, r, h.log, "Failed to import albums", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
		"rejected":  summary.Rejected,
	})
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
