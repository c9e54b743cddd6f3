package game

// Outcome is the terminal status of a position.
type Outcome uint8

const (
	InProgress Outcome = iota
	RedWin
	YellowWin
	Draw
)

// WinFor returns the outcome in which p has four in a row.
func WinFor(p Player) Outcome {
	switch p {
	case Red:
		return RedWin
	case Yellow:
		return YellowWin
	default:
		panic("no outcome for an empty player")
	}
}

// Winner returns the winning side, or Empty for a draw or an unfinished game.
func (o Outcome) Winner() Player {
	switch o {
	case RedWin:
		return Red
	case YellowWin:
		return Yellow
	default:
		return Empty
	}
}

// IsTerminal reports whether the game is over.
func (o Outcome) IsTerminal() bool {
	return o != InProgress
}

func (o Outcome) String() string {
	switch o {
	case RedWin:
		return "red wins"
	case YellowWin:
		return "yellow wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Row and column steps for the four line orientations: horizontal,
// vertical, down-right diagonal and up-right diagonal.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Evaluate scans every line of Connect cells and returns the first win found.
// A full board without a line is a draw.
func (s State) Evaluate() Outcome {
	for _, d := range directions {
		for row := 0; row < Height; row++ {
			for column := 0; column < Width; column++ {
				if p := s.lineFrom(row, column, d[0], d[1]); p != Empty {
					return WinFor(p)
				}
			}
		}
	}

	for column := 0; column < Width; column++ {
		if s.board[0][column] == Empty {
			return InProgress
		}
	}
	return Draw
}

// lineFrom returns the owner of the Connect cells starting at (row, column)
// along (dr, dc), or Empty if they leave the board or differ.
func (s State) lineFrom(row, column, dr, dc int) Player {
	endRow := row + dr*(Connect-1)
	endColumn := column + dc*(Connect-1)
	if endRow < 0 || endRow >= Height || endColumn < 0 || endColumn >= Width {
		return Empty
	}

	first := s.board[row][column]
	if first == Empty {
		return Empty
	}
	for i := 1; i < Connect; i++ {
		if s.board[row+dr*i][column+dc*i] != first {
			return Empty
		}
	}
	return first
}
