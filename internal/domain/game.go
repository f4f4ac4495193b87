package domain

// Game is the state of one human-vs-computer match. It is created once per
// game and only changes through MakeMove.
type Game struct {
	Board         Board
	CurrentPlayer Player
	Status        GameStatus
	MoveCount     int
	LastRow       int
	LastColumn    int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Human,
		Status:        StatusOngoing,
		LastRow:       -1,
		LastColumn:    -1,
	}
}

// MakeMove plays a disc for the player whose turn it is. A rejected move
// leaves the board and the turn unchanged.
func (g *Game) MakeMove(player Player, column int) (int, error) {
	if g.Status.IsFinished() {
		return -1, ErrGameOver
	}

	if g.CurrentPlayer != player {
		return -1, ErrNotYourTurn
	}

	row, err := g.Board.ApplyMove(column, player)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.LastRow, g.LastColumn = row, column
	g.Status = Status(&g.Board)

	if !g.Status.IsFinished() {
		g.CurrentPlayer = player.Opponent()
	}

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status.IsFinished()
}
