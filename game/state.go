package game

import "strings"

// Board is indexed [row][column] with row 0 at the top. Discs fall towards
// row Height-1.
type Board [Height][Width]Player

// State is a Connect Four position. It holds no references, so assigning a
// State copies the whole position and successors never share a board.
type State struct {
	board    Board
	turn     Player
	lastMove int
}

// NewState returns the empty board with first to move.
func NewState(first Player) State {
	if first != Red && first != Yellow {
		panic("first player must be red or yellow")
	}
	return State{turn: first, lastMove: NoMove}
}

// Play drops a disc for the side to move into column. It reports false and
// leaves the state untouched when the column is out of range or full.
func (s *State) Play(column int) bool {
	if column < 0 || column >= Width {
		return false
	}
	for row := Height - 1; row >= 0; row-- {
		if s.board[row][column] == Empty {
			s.board[row][column] = s.turn
			s.turn = s.turn.Opponent()
			s.lastMove = column
			return true
		}
	}
	return false
}

// Turn returns the side to move.
func (s State) Turn() Player {
	return s.turn
}

// LastMove returns the column most recently played, or NoMove.
func (s State) LastMove() int {
	return s.lastMove
}

// At returns the occupant of a cell.
func (s State) At(row, column int) Player {
	return s.board[row][column]
}

// Board returns a copy of the grid.
func (s State) Board() Board {
	return s.board
}

// CanPlay reports whether column has at least one empty cell.
func (s State) CanPlay(column int) bool {
	return column >= 0 && column < Width && s.board[0][column] == Empty
}

// LegalMoves returns the non-full columns in ascending order.
func (s State) LegalMoves() []int {
	moves := make([]int, 0, Width)
	for column := 0; column < Width; column++ {
		if s.CanPlay(column) {
			moves = append(moves, column)
		}
	}
	return moves
}

// WinningMoves returns the columns that give the side to move four in a row.
func (s State) WinningMoves() []int {
	var wins []int
	for column := 0; column < Width; column++ {
		next := s
		if next.Play(column) && next.Evaluate().Winner() == s.turn {
			wins = append(wins, column)
		}
	}
	return wins
}

// Discs counts the occupied cells.
func (s State) Discs() int {
	count := 0
	for row := range s.board {
		for _, cell := range s.board[row] {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// String draws the board one row per line, top row first, using
// '.' for empty, 'X' for red and 'O' for yellow.
func (s State) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := 0; row < Height; row++ {
		for column := 0; column < Width; column++ {
			sb.WriteByte(symbol(s.board[row][column]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(p Player) byte {
	switch p {
	case Red:
		return 'X'
	case Yellow:
		return 'O'
	default:
		return '.'
	}
}
