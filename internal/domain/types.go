package domain

// Cell is the content of a single board slot.
type Cell uint8

const (
	Empty     Cell = 0
	HumanDisc Cell = 1
	AiDisc    Cell = 2
)

// Player identifies whose disc or whose turn it is.
type Player uint8

const (
	Human Player = 1
	Ai    Player = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// SearchDepth is the fixed difficulty used for the computer's move.
	SearchDepth = 6
)

// Disc returns the cell value a player's disc occupies.
func (p Player) Disc() Cell {
	if p == Ai {
		return AiDisc
	}
	return HumanDisc
}

func (p Player) Opponent() Player {
	if p == Human {
		return Ai
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Ai:
		return "ai"
	}
	return "unknown"
}

// to represent the game status
type GameStatus string

const (
	StatusOngoing  GameStatus = "ongoing"
	StatusHumanWin GameStatus = "human_win"
	StatusAiWin    GameStatus = "ai_win"
	StatusDraw     GameStatus = "draw"
)

// IsFinished reports whether no further moves may be played.
func (s GameStatus) IsFinished() bool {
	return s != StatusOngoing
}

// Result is the line shown to the human once the game is over.
func (s GameStatus) Result() string {
	switch s {
	case StatusHumanWin:
		return "You win!"
	case StatusAiWin:
		return "You lose!"
	case StatusDraw:
		return "Draw!"
	}
	return ""
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameOver      Error = "game is over"
	ErrNoSession     Error = "no game in progress"
)
