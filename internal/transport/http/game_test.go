package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four-ai/backend/internal/domain"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/bot"
	"github.com/iamasit07/connect-four-ai/backend/internal/service/game"
)

type discardNotifier struct{}

func (discardNotifier) SendMessage(domain.ServerMessage) error { return nil }

// firstOpenEngine plays the left-most open column.
type firstOpenEngine struct{}

func (firstOpenEngine) BestMove(_ context.Context, b domain.Board, _ int) bot.Decision {
	for c := 0; c < domain.Columns; c++ {
		if b.CanDrop(c) {
			return bot.Decision{Column: c}
		}
	}
	return bot.Decision{Column: bot.NoMove}
}

func newTestRouter() (*gin.Engine, *game.SessionManager) {
	gin.SetMode(gin.TestMode)
	sm := game.NewSessionManager(firstOpenEngine{}, discardNotifier{}, 0)
	h := NewGameHandler(sm, func() bool { return true })

	router := gin.New()
	router.GET("/healthz", h.Health)
	router.GET("/api/game", h.GetGame)
	router.POST("/api/game", h.NewGame)
	router.POST("/api/game/move", h.MakeMove)
	return router, sm
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) domain.GameSnapshot {
	t.Helper()
	var snap domain.GameSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("bad body %q: %v", rec.Body.String(), err)
	}
	return snap
}

func TestGetGameWithoutSession(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(router, http.MethodGet, "/api/game", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}

	rec = do(router, http.MethodPost, "/api/game/move", `{"column":1}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", rec.Code)
	}
}

func TestGameLifecycle(t *testing.T) {
	router, _ := newTestRouter()

	rec := do(router, http.MethodPost, "/api/game", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201", rec.Code)
	}
	created := decodeSnapshot(t, rec)
	if created.Status != domain.StatusOngoing || created.CurrentTurn != "human" {
		t.Fatalf("got %+v", created)
	}

	rec = do(router, http.MethodPost, "/api/game/move", `{"column":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	snap := decodeSnapshot(t, rec)
	if snap.MoveCount != 2 || snap.Board[5][3] != int(domain.HumanDisc) || snap.Board[5][0] != int(domain.AiDisc) {
		t.Fatalf("got %+v", snap)
	}

	// x=200 lands in column 2
	rec = do(router, http.MethodPost, "/api/game/move", `{"x":200}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	snap = decodeSnapshot(t, rec)
	if snap.Board[5][2] != int(domain.HumanDisc) {
		t.Fatalf("pointer move missed column 2: %v", snap.Board)
	}

	rec = do(router, http.MethodGet, "/api/game", "")
	if rec.Code != http.StatusOK || decodeSnapshot(t, rec).GameID != created.GameID {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMakeMoveErrors(t *testing.T) {
	router, _ := newTestRouter()
	do(router, http.MethodPost, "/api/game", "")

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed body", `{"column":`, http.StatusBadRequest},
		{"missing column", `{}`, http.StatusBadRequest},
		{"column out of range", `{"column":7}`, http.StatusBadRequest},
		{"negative column", `{"column":-1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/game/move", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}

	// three human drops in column 0 and the engine's replies fill it
	for i := 0; i < 3; i++ {
		if rec := do(router, http.MethodPost, "/api/game/move", `{"column":0}`); rec.Code != http.StatusOK {
			t.Fatalf("drop %d: got %d", i, rec.Code)
		}
	}
	rec := do(router, http.MethodPost, "/api/game/move", `{"column":0}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("got %d, want 409 for a full column", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()
	rec := do(router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var body struct {
		Status    string `json:"status"`
		MoveCache bool   `json:"moveCache"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || !body.MoveCache {
		t.Fatalf("got %+v", body)
	}
}
