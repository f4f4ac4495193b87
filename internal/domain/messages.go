package domain

// ClientMessage is what the presentation layer sends over the websocket.
// A move names either a column directly or the pointer's x position.
type ClientMessage struct {
	Type     string `json:"type"`
	Column   *int   `json:"column,omitempty"`
	PointerX *int   `json:"x,omitempty"`
}

type ServerMessage struct {
	Type        string     `json:"type"`
	Message     string     `json:"message,omitempty"`
	GameID      string     `json:"gameId,omitempty"`
	Column      int        `json:"column"`
	Row         int        `json:"row"`
	Player      string     `json:"player,omitempty"`
	Board       [][]int    `json:"board,omitempty"`
	NextTurn    string     `json:"nextTurn,omitempty"`
	CurrentTurn string     `json:"currentTurn,omitempty"`
	Status      GameStatus `json:"status,omitempty"`
	Result      string     `json:"result,omitempty"`
	MoveCount   int        `json:"moveCount"`
}

// GameSnapshot is the read-only view of the live game served over HTTP.
type GameSnapshot struct {
	GameID      string     `json:"gameId"`
	Board       [][]int    `json:"board"`
	CurrentTurn string     `json:"currentTurn"`
	Status      GameStatus `json:"status"`
	Result      string     `json:"result,omitempty"`
	MoveCount   int        `json:"moveCount"`
	LastRow     int        `json:"lastRow"`
	LastColumn  int        `json:"lastColumn"`
}
