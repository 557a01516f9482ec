package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/go-chi/chi/v5"
)

type BannerHandler struct {
	banners *domain.BannerService
	log     *logger.ZapLogger
}

func NewBannerHandler(banners *domain.BannerService, log *logger.ZapLogger) *BannerHandler {
	return &BannerHandler{banners: banners, log: log}
}

func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.banners.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch banners", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banners": banners})
}

// GET /banners/active/{position}; "banner" is null when nothing is active.
func (h *BannerHandler) Active(w http.ResponseWriter, r *http.Request) {
	banner, err := h.banners.Active(r.Context(), chi.URLParam(r, "position"))
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch active banner", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banner": banner})
}

func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Banner
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create banner", err)
		return
	}
	banner, err := h.banners.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create banner", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banner": banner})
}

func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.log, "Failed to update banner", err)
		return
	}
	banner, err := h.banners.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, "Failed to update banner", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"banner": banner})
}

func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.banners.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete banner", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type PopupHandler struct {
	popups *domain.PopupService
	log    *logger.ZapLogger
}

func NewPopupHandler(popups *domain.PopupService, log *logger.ZapLogger) *PopupHandler {
	return &PopupHandler{popups: popups, log: log}
}

func (h *PopupHandler) List(w http.ResponseWriter, r *http.Request) {
	popups, err := h.popups.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch popups", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"popups": popups})
}

func (h *PopupHandler) Active(w http.ResponseWriter, r *http.Request) {
	popups, err := h.popups.Active(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch popups", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"popups": popups})
}

func (h *PopupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Popup
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create popup", err)
		return
	}
	popup, err := h.popups.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create popup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"popup": popup})
}

func (h *PopupHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.log, "Failed to update popup", err)
		return
	}
	popup, err := h.popups.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, "Failed to update popup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"popup": popup})
}

func (h *PopupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.popups.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete popup", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type MessageHandler struct {
	messages *domain.MessageService
	log      *logger.ZapLogger
}

func NewMessageHandler(messages *domain.MessageService, log *logger.ZapLogger) *MessageHandler {
	return &MessageHandler{messages: messages, log: log}
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch contact messages", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessage
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create contact message", err)
		return
	}
	msg, err := h.messages.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create contact message", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

// PUT /contact-messages/{id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	msg, err := h.messages.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, "Failed to mark message as read", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete contact message", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
