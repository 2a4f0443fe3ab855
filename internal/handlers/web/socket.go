package web

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/stumped/internal/events"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	readLimit = 4096
)

// socketMessage is one frame pushed to a client
type socketMessage struct {
	Type     string        `json:"type"`
	Event    *events.Event `json:"event,omitempty"`
	Snapshot *snapshotView `json:"snapshot,omitempty"`
}

// serveSocket pushes a personalised snapshot after every room event. Any
// frame the client sends counts as activity for the inactivity monitor.
// Disconnecting does not remove the player; silence does, once it outlasts
// the idle timeout.
func (h *Handler) serveSocket(c *gin.Context) {
	roomID := c.Param("id")
	token := session(c)

	snap, err := h.snapshot(c.Request.Context(), roomID, token)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if snap.Viewer == nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not seated in this room"})
		return
	}
	playerID := snap.Viewer.ID

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("room_id", roomID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := h.logger.With().Str("room_id", roomID).Str("player_id", playerID).Logger()

	sub, err := h.subscriber.Subscribe(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to subscribe to room")
		closeSocket(conn, websocket.CloseInternalServerErr, "subscribe failed")
		return
	}
	defer sub.Close()

	h.watch(ctx, roomID, playerID, snap.Room.Status)

	view := newSnapshotView(snap)
	if err := writeFrame(conn, &socketMessage{Type: "snapshot", Snapshot: &view}); err != nil {
		return
	}

	go h.readFrames(ctx, cancel, conn, roomID, playerID)

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case event, ok := <-sub.Events():
			if !ok {
				closeSocket(conn, websocket.CloseGoingAway, "event stream closed")
				return
			}

			msg := &socketMessage{Type: "event", Event: event}
			if event.Deleted {
				writeFrame(conn, msg)
				closeSocket(conn, websocket.CloseNormalClosure, "room closed")
				return
			}

			out, err := h.snapshot(ctx, roomID, token)
			if err != nil {
				log.Warn().Err(err).Msg("failed to refresh snapshot")
			} else if out.Viewer == nil {
				writeFrame(conn, msg)
				closeSocket(conn, websocket.CloseNormalClosure, "removed from room")
				return
			} else {
				view := newSnapshotView(out)
				msg.Snapshot = &view
			}

			if err := writeFrame(conn, msg); err != nil {
				return
			}
		}
	}
}

// readFrames drains client frames, touching the monitor for each one
func (h *Handler) readFrames(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, roomID, playerID string) {
	defer cancel()

	deadline := 2 * h.pingInterval
	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(deadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(deadline))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(deadline))
		h.touch(ctx, roomID, playerID)
	}
}

func writeFrame(conn *websocket.Conn, msg *socketMessage) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func closeSocket(conn *websocket.Conn, code int, reason string) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
}
