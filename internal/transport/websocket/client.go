package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
)

// ConnectionManager holds the single presentation connection. A new
// connection replaces the previous one.
type ConnectionManager struct {
	conn *websocket.Conn

	// writeMu ensures only one goroutine writes to the socket at a time,
	// conn.WriteJSON is not safe for concurrent use.
	writeMu sync.Mutex

	mu sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{}
}

// SetConnection registers conn, closing any older connection.
func (cm *ConnectionManager) SetConnection(conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.conn != nil && cm.conn != conn {
		old := cm.conn
		go func() {
			cm.writeMu.Lock()
			old.SetWriteDeadline(time.Now().Add(time.Second))
			old.WriteJSON(domain.ServerMessage{
				Type:    "force_disconnect",
				Message: "Opened in another window",
			})
			cm.writeMu.Unlock()
			old.Close()
		}()
	}
	cm.conn = conn
}

// RemoveConnectionIfMatching only clears conn if it is still the current
// one, so an old socket shutting down cannot drop its replacement.
func (cm *ConnectionManager) RemoveConnectionIfMatching(conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.conn == conn {
		cm.conn.Close()
		cm.conn = nil
	}
}

func (cm *ConnectionManager) IsConnected() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.conn != nil
}

// SendMessage writes a JSON message to the current connection. Without a
// connection the message is dropped.
func (cm *ConnectionManager) SendMessage(message domain.ServerMessage) error {
	cm.mu.RLock()
	conn := cm.conn
	cm.mu.RUnlock()

	if conn == nil {
		return nil
	}

	cm.writeMu.Lock()
	defer cm.writeMu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(message)
}
