package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/delivery/ws"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth      *AuthHandler
	Albums    *AlbumHandler
	Videos    *VideoHandler
	Banners   *BannerHandler
	Popups    *PopupHandler
	Messages  *MessageHandler
	FAQs      *FAQHandler
	Dashboard *DashboardHandler
	Hub       *ws.Hub
}

func RegisterRoutes(r chi.Router, prefix, anonKey string, h Handlers, log *logger.ZapLogger) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Group(func(r chi.Router) {
			r.Use(AnonKeyMiddleware(anonKey))

			r.Get("/ws", ws.Handler(h.Hub, log))

			r.Route("/albums", func(r chi.Router) {
				r.Get("/", h.Albums.List)
				r.Get("/catalog", h.Albums.Catalog)
				r.Post("/", h.Albums.Create)
				r.Post("/bulk-delete", h.Albums.BulkDelete)
				r.Post("/import", h.Albums.Import)
				r.Get("/{id}", h.Albums.Get)
				r.Put("/{id}", h.Albums.Update)
				r.Delete("/{id}", h.Albums.Delete)
			})

			r.Route("/videos", func(r chi.Router) {
				r.Get("/", h.Videos.List)
				r.Get("/catalog", h.Videos.Catalog)
				r.Post("/", h.Videos.Create)
				r.Post("/sync", h.Videos.Sync)
				r.Post("/bulk-add", h.Videos.BulkAdd)
				r.Get("/{id}", h.Videos.Get)
				r.Put("/{id}", h.Videos.Update)
				r.Delete("/{id}", h.Videos.Delete)
			})

			r.Route("/banners", func(r chi.Router) {
				r.Get("/", h.Banners.List)
				r.Get("/active/{position}", h.Banners.Active)
				r.Post("/", h.Banners.Create)
				r.Put("/{id}", h.Banners.Update)
				r.Delete("/{id}", h.Banners.Delete)
			})

			r.Route("/popups", func(r chi.Router) {
				r.Get("/", h.Popups.List)
				r.Get("/active", h.Popups.Active)
				r.Post("/", h.Popups.Create)
				r.Put("/{id}", h.Popups.Update)
				r.Delete("/{id}", h.Popups.Delete)
			})

			r.Route("/contact-messages", func(r chi.Router) {
				r.Get("/", h.Messages.List)
				r.Post("/", h.Messages.Create)
				r.Put("/{id}/read", h.Messages.MarkRead)
				r.Delete("/{id}", h.Messages.Delete)
			})

			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", h.FAQs.List)
				r.Post("/", h.FAQs.Create)
				r.Post("/initialize", h.FAQs.Initialize)
				r.Put("/{id}", h.FAQs.Update)
				r.Put("/{id}/toggle-visibility", h.FAQs.ToggleVisibility)
				r.Delete("/{id}", h.FAQs.Delete)
			})

			r.Post("/admin/login", h.Auth.Login)
			r.Post("/admin/verify", h.Auth.Verify)
			r.Post("/admin/logout", h.Auth.Logout)

			r.Get("/dashboard/stats", h.Dashboard.Stats)
		})
	})
}
