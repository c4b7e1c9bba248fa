package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-progression/internal/auth"
	"go-progression/internal/config"
	"go-progression/internal/progression"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocket connection wrapper with mutex for thread-safe writes
type safeWSConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *safeWSConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *safeWSConn) Close() error {
	return s.conn.Close()
}

// ProgressEvent is one broadcast progression update
type ProgressEvent struct {
	Type     string   `json:"type"` // achievement_unlocked or level_up
	AgentID  string   `json:"agent_id"`
	Unlocked []string `json:"unlocked,omitempty"`
	XPGained int      `json:"xp_gained,omitempty"`
	OldLevel int      `json:"old_level,omitempty"`
	NewLevel int      `json:"new_level,omitempty"`
}

type notificationHub struct {
	mu    sync.Mutex
	conns map[*safeWSConn]bool
}

var hub = &notificationHub{conns: map[*safeWSConn]bool{}}

func (h *notificationHub) add(c *safeWSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = true
}

func (h *notificationHub) remove(c *safeWSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

func (h *notificationHub) broadcast(ev ProgressEvent) {
	h.mu.Lock()
	conns := make([]*safeWSConn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			log.Printf("[Notifications] Dropping dead connection: %v", err)
			h.remove(c)
			c.Close()
		}
	}
}

// notifyProgress publishes unlock and level-up events to every
// connected listener. Quiet results publish nothing.
func notifyProgress(agentID string, result progression.UnlockResult) {
	if len(result.Unlocked) > 0 {
		hub.broadcast(ProgressEvent{
			Type:     "achievement_unlocked",
			AgentID:  agentID,
			Unlocked: result.Unlocked,
			XPGained: result.XPGained,
		})
	}
	if result.LeveledUp {
		hub.broadcast(ProgressEvent{
			Type:     "level_up",
			AgentID:  agentID,
			OldLevel: result.OldLevel,
			NewLevel: result.NewLevel,
		})
	}
}

// GET /ws/notifications
// Streams progression events as they happen. Auth is via the token
// query parameter because browsers cannot set headers on WebSocket
// dials.
func WSNotificationsHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = c.GetHeader("Authorization")
			if len(token) > 7 && token[:7] == "Bearer " {
				token = token[7:]
			}
		}
		if _, err := auth.ParseJWT(cfg.Server.JWTSecret, token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid JWT"})
			return
		}

		rawConn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WebSocket upgrade failed:", err)
			return
		}
		conn := &safeWSConn{conn: rawConn}
		hub.add(conn)
		defer func() {
			hub.remove(conn)
			conn.Close()
		}()

		// Hold the connection open; listeners never send anything useful
		for {
			if _, _, err := rawConn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
