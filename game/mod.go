package game

const (
	Width   = 7 // Columns
	Height  = 6 // Rows, row 0 is the top of the board
	Connect = 4 // Discs in a line needed to win
)

// NoMove is the last move of a position where nobody has played yet
const NoMove = -1

// Player is the occupant of a board cell and also the side to move.
type Player uint8

const (
	Empty Player = iota
	Red
	Yellow
)

// Opponent returns the other side. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}
