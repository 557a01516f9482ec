package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Hub groups websocket connections by room. Batch jobs address a room by
// the roomID the admin UI opened before starting the job.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
	log   *logger.ZapLogger
}

func NewHub(log *logger.ZapLogger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
		log:   log,
	}
}

func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true

	h.log.Log(logger.LogEntry{
		Level:   "debug",
		Message: "ws register",
		Fields:  map[string]any{"room": roomID, "conns": len(h.rooms[roomID])},
	})
}

func (h *Hub) Unregister(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[roomID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		_ = conn.Close()
	}
	if len(conns) == 0 {
		delete(h.rooms, roomID)
	}
}

func (h *Hub) RoomSize(roomID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}

// SendToRoom writes msg to every connection in the room. Writes happen under
// the hub lock: a connection allows one writer at a time.
func (h *Hub) SendToRoom(roomID string, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.rooms[roomID]
	if len(conns) == 0 {
		return
	}
	for conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "ws send failed",
				Fields:  map[string]any{"room": roomID},
				Error:   err,
			})
		}
	}
}

// Forward relays progress events to their rooms until ctx is done or the
// channel closes.
func (h *Hub) Forward(ctx context.Context, events <-chan ports.ProgressEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			b, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			h.SendToRoom(ev.RoomID, b)
		}
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
