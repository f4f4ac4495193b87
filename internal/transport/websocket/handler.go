package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/game"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager    *ConnectionManager
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. Browser connections are only
// accepted from allowedOrigins; clients without an Origin header always are.
func NewHandler(cm *ConnectionManager, sm *game.SessionManager, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager:    cm,
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || origin == "http://"+r.Host {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == origin {
						return true
					}
				}
				log.Printf("[WS] Rejected origin %s", origin)
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the request and serves the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(c.Request.Context(), conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(ctx context.Context, conn *websocket.Conn) {
	// Set read deadline to detect stale connections
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	done := make(chan struct{})
	defer close(done)

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					return
				}
			}
		}
	}()

	h.ConnManager.SetConnection(conn)
	log.Printf("[WS] Connection opened from %s", conn.RemoteAddr())

	defer func() {
		log.Printf("[WS] Connection closed for %s", conn.RemoteAddr())
		h.ConnManager.RemoveConnectionIfMatching(conn)
	}()

	// resume the live game, or start the first one
	if session, ok := h.SessionManager.Current(); ok {
		h.sendState(session.Snapshot())
	} else {
		h.SessionManager.NewSession()
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Client disconnected unexpectedly: %v", err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.sendError("Invalid message format")
			continue
		}

		h.processMessage(ctx, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(ctx context.Context, msg domain.ClientMessage) {
	switch msg.Type {
	case "new_game":
		h.SessionManager.NewSession()

	case "make_move":
		column, err := resolveColumn(msg)
		if err != nil {
			h.sendError(err.Error())
			return
		}

		session, ok := h.SessionManager.Current()
		if !ok {
			h.sendError(domain.ErrNoSession.Error())
			return
		}

		if err := session.HandleMove(ctx, column); err != nil {
			// a rejected click is reported but never ends the game
			var domainErr domain.Error
			if !errors.As(err, &domainErr) {
				log.Printf("[WS] Move error: %v", err)
			}
			h.sendError(err.Error())
		}

	case "get_state":
		snapshot, err := h.SessionManager.Snapshot()
		if err != nil {
			h.sendError(err.Error())
			return
		}
		h.sendState(snapshot)

	default:
		h.sendError("Unknown message type")
	}
}

func (h *Handler) sendState(s domain.GameSnapshot) {
	h.ConnManager.SendMessage(domain.ServerMessage{
		Type:        "state",
		GameID:      s.GameID,
		Board:       s.Board,
		CurrentTurn: s.CurrentTurn,
		Status:      s.Status,
		Result:      s.Result,
		MoveCount:   s.MoveCount,
		Row:         s.LastRow,
		Column:      s.LastColumn,
	})
}

func (h *Handler) sendError(message string) {
	h.ConnManager.SendMessage(domain.ServerMessage{Type: "error", Message: message})
}
