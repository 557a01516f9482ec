package ws

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
)

// Handler upgrades GET /ws?roomID= and keeps the connection registered
// until the client goes away. Clients only listen; inbound frames are
// discarded.
func Handler(hub *Hub, log *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := r.URL.Query().Get("roomID")
		if roomID == "" {
			http.Error(w, "missing roomID", http.StatusBadRequest)
			return
		}

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "ws upgrade failed",
				Error:   err,
			})
			return
		}

		hub.Register(roomID, conn)
		defer hub.Unregister(roomID, conn)

		hub.SendToRoom(roomID, []byte(`{"status":"connected"}`))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
