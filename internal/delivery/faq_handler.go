package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/go-chi/chi/v5"
)

type FAQHandler struct {
	faqs *domain.FAQService
	log  *logger.ZapLogger
}

func NewFAQHandler(faqs *domain.FAQService, log *logger.ZapLogger) *FAQHandler {
	return &FAQHandler{faqs: faqs, log: log}
}

// GET /faqs?showHidden=true
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqs.List(r.Context(), r.URL.Query().Get("showHidden") == "true")
	if err != nil {
		writeError(w, r, h.log, "Failed to fetch FAQs", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faqs": faqs})
}

func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.FAQ
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, h.log, "Failed to create FAQ", err)
		return
	}
	faq, err := h.faqs.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, "Failed to create FAQ", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faq": faq})
}

func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.Patch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, h.log, "Failed to update FAQ", err)
		return
	}
	faq, err := h.faqs.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, h.log, "Failed to update FAQ", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faq": faq})
}

func (h *FAQHandler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	faq, err := h.faqs.ToggleVisibility(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, "Failed to toggle FAQ visibility", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faq": faq})
}

func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.faqs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, "Failed to delete FAQ", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// POST /faqs/initialize
func (h *FAQHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	res, err := h.faqs.Initialize(context.WithoutCancel(r.Context()))
	if err != nil {
		writeError(w, r, h.log, "Failed to initialize FAQs", err)
		return
	}
	if res.Existing > 0 {
		writeJSON(w, http.StatusOK, map[string]any{"message": "FAQs already initialized", "count": res.Existing})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("%d개의 FAQ가 초기화되었습니다.", res.Seeded),
		"count":   res.Seeded,
	})
}

type DashboardHandler struct {
	dash *domain.DashboardService
	log  *logger.ZapLogger
}

func NewDashboardHandler(dash *domain.DashboardService, log *logger.ZapLogger) *DashboardHandler {
	return &DashboardHandler{dash: dash, log: log}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.dash.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Failed to load dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": st})
}
