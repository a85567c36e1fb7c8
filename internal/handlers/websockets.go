package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	// TODO: read allowed origins from config once a browser client exists.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Stream system detail
// @Description  WebSocket. Sends the system detail (with recent measurements) immediately and then every interval.
// @Tags         systems
// @Param        id           path   int     true   "System id"
// @Param        interval     query  string  false  "Go duration, max 10s"  example(2s)
// @Param        interval_ms  query  int     false  "Milliseconds, max 10000"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /systems/{id}/ws [get]
// @Security     BearerAuth
func (h *Handler) wsSystem(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c, "ws_system_failed")
	if !ok {
		return
	}
	// Out-of-scope systems fail before the upgrade so the client gets a 404.
	if _, err := h.services.GetSystem(c.Request.Context(), uid, id); err != nil {
		h.respondError(c, "ws_system_failed", err, "user_id", uid, "system_id", id)
		return
	}

	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendSystem(ctx, conn, uid, id); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendSystem(ctx, conn, uid, id); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendSystem writes the current detail. A system deleted mid-stream is
// reported once as an error frame and ends the stream.
func (h *Handler) sendSystem(ctx context.Context, conn *websocket.Conn, uid, id int64) error {
	d, err := h.services.GetSystem(ctx, uid, id)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_get_system_failed", "err", err, "system_id", id)
		}
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: wsErrorText(err)})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: "system", Data: d})
}

// wsErrorText is the client-facing text of an error frame. Causes other
// than a vanished system stay in the log.
func wsErrorText(err error) string {
	if errors.Is(err, service.ErrNotFound) {
		return errNotFound
	}
	return errInternal
}
