package game

import (
	"errors"
	"fmt"
)

var (
	ErrBadShape     = errors.New("board must have 6 rows of 7 cells")
	ErrBadCell      = errors.New("unknown cell symbol")
	ErrFloatingTile = errors.New("disc above an empty cell")
)

// Parse builds a position from Height rows drawn top row first with the
// symbols used by String. The last move is unknown and reported as NoMove.
func Parse(turn Player, rows ...string) (State, error) {
	if turn != Red && turn != Yellow {
		return State{}, fmt.Errorf("parse: turn %s: %w", turn, ErrBadCell)
	}
	if len(rows) != Height {
		return State{}, fmt.Errorf("parse: got %d rows: %w", len(rows), ErrBadShape)
	}

	s := State{turn: turn, lastMove: NoMove}
	for row, line := range rows {
		if len(line) != Width {
			return State{}, fmt.Errorf("parse: row %d has %d cells: %w", row, len(line), ErrBadShape)
		}
		for column := 0; column < Width; column++ {
			switch line[column] {
			case '.':
				s.board[row][column] = Empty
			case 'X':
				s.board[row][column] = Red
			case 'O':
				s.board[row][column] = Yellow
			default:
				return State{}, fmt.Errorf("parse: %q at row %d column %d: %w", line[column], row, column, ErrBadCell)
			}
		}
	}

	for column := 0; column < Width; column++ {
		for row := 0; row < Height-1; row++ {
			if s.board[row][column] != Empty && s.board[row+1][column] == Empty {
				return State{}, fmt.Errorf("parse: row %d column %d: %w", row, column, ErrFloatingTile)
			}
		}
	}
	return s, nil
}

// MustParse is Parse for fixed positions known to be valid.
func MustParse(turn Player, rows ...string) State {
	s, err := Parse(turn, rows...)
	if err != nil {
		panic(err)
	}
	return s
}
