package websocket

import "github.com/iamasit07/connect-four-ai/backend/internal/domain"

// resolveColumn picks the column a move message refers to. An explicit
// column wins over a pointer position.
func resolveColumn(msg domain.ClientMessage) (int, error) {
	switch {
	case msg.Column != nil:
		return *msg.Column, nil
	case msg.PointerX != nil:
		return domain.ColumnFromPointer(*msg.PointerX), nil
	}
	return -1, domain.ErrInvalidColumn
}
