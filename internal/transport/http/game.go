package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/game"
)

// GameHandler exposes the live game over plain HTTP.
type GameHandler struct {
	SessionManager *game.SessionManager
	CacheEnabled   func() bool
}

func NewGameHandler(sm *game.SessionManager, cacheEnabled func() bool) *GameHandler {
	return &GameHandler{SessionManager: sm, CacheEnabled: cacheEnabled}
}

type moveRequest struct {
	Column *int `json:"column"`
	X      *int `json:"x"`
}

// GetGame returns the state of the live game
func (h *GameHandler) GetGame(c *gin.Context) {
	snapshot, err := h.SessionManager.Snapshot()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// NewGame discards the live game and starts another
func (h *GameHandler) NewGame(c *gin.Context) {
	session := h.SessionManager.NewSession()
	c.JSON(http.StatusCreated, session.Snapshot())
}

// MakeMove plays the human's column and answers with the state after the
// computer's reply.
func (h *GameHandler) MakeMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	column := -1
	switch {
	case req.Column != nil:
		column = *req.Column
	case req.X != nil:
		column = domain.ColumnFromPointer(*req.X)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "column or x is required"})
		return
	}

	session, ok := h.SessionManager.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoSession.Error()})
		return
	}

	if err := session.HandleMove(c.Request.Context(), column); err != nil {
		c.JSON(moveErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// Health reports liveness and whether search results are cached
func (h *GameHandler) Health(c *gin.Context) {
	cache := false
	if h.CacheEnabled != nil {
		cache = h.CacheEnabled()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "moveCache": cache})
}

func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull),
		errors.Is(err, domain.ErrNotYourTurn),
		errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
