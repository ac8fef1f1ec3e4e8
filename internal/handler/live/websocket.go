package live

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/zhouzirui/roster/backend/internal/model/person"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

// Feed is what the live handler needs from the roster service.
type Feed interface {
	List(ctx context.Context) []person.Person
	Subscribe() (<-chan struct{}, func())
}

// WebSocketHandler pushes roster snapshots to connected pages.
type WebSocketHandler struct {
	feed     Feed
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(feed Feed) *WebSocketHandler {
	return &WebSocketHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/records", h.handleWebSocket)
}

type snapshotMessage struct {
	Type      string          `json:"type"`
	Records   []person.Person `json:"records"`
	Timestamp int64           `json:"timestamp"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	changes, cancel := h.feed.Subscribe()
	defer cancel()

	ctx, stop := context.WithCancel(r.Context())
	defer stop()

	log.Printf("[ws] client connected remote=%s", r.RemoteAddr)
	go h.readLoop(conn, stop)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := h.sendSnapshot(ctx, conn); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[ws] client disconnected remote=%s", r.RemoteAddr)
			return
		case <-changes:
			if err := h.sendSnapshot(ctx, conn); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readLoop drains client frames so control messages are processed; the page
// never sends anything meaningful. It cancels the connection on read failure.
func (h *WebSocketHandler) readLoop(conn *websocket.Conn, stop context.CancelFunc) {
	defer stop()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}
	}
}

func (h *WebSocketHandler) sendSnapshot(ctx context.Context, conn *websocket.Conn) error {
	msg := snapshotMessage{
		Type:      "snapshot",
		Records:   h.feed.List(ctx),
		Timestamp: time.Now().Unix(),
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write snapshot failed: %v", err)
		return err
	}
	return nil
}
