package game

// Size is the number of rows and columns of the board.
const Size = 10

// Player identifies one side of the game. The zero value means no player.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// backRank is the row on which a man of player p is crowned. Player 1 starts on the
// low rows and moves toward row 9, player 2 the opposite.
func (p Player) backRank() int {
	if p == Player1 {
		return Size - 1
	}
	return 0
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Rank is the promotion status of a piece.
type Rank int

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	if r == King {
		return "king"
	}
	return "man"
}

// Result reports what happens after a move has been applied.
type Result int

const (
	TurnEnds       Result = iota // The active player flips
	ChainContinues               // The same piece must capture again
)

func (r Result) String() string {
	if r == ChainContinues {
		return "chain continues"
	}
	return "turn ends"
}

// Phase is the per-ply state machine of a game.
type Phase int

const (
	AwaitingSelection Phase = iota
	CaptureChainInProgress
	GameOver
)

// Evaluates the game state to a score from the perspective of player.
// Higher is better for player.
type Evaluate func(state *GameState, player Player) int
