package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 9

type Mark string

const (
	EmptyCell Mark = ""
	Circle    Mark = "O"
	Cross     Mark = "X"
)

// Side - the player whose turn it is. Circle always opens a fresh game.
type Side int

const (
	SideCircle Side = iota
	SideCross
)

// Mark - the mark this side places on the board.
func (that Side) Mark() Mark {
	if that == SideCross {
		return Cross
	}
	return Circle
}

// Opponent - the other side.
func (that Side) Opponent() Side {
	if that == SideCross {
		return SideCircle
	}
	return SideCross
}

// Sign - +1 for the side whose win scores positive (Cross), -1 for Circle.
func (that Side) Sign() int {
	switch that {
	case SideCross:
		return 1
	default:
		return -1
	}
}

func (that Side) String() string {
	if that == SideCross {
		return "Cross"
	}
	return "Circle"
}

type Outcome string

const (
	InProgress Outcome = "in_progress"
	CircleWins Outcome = "circle_wins"
	CrossWins  Outcome = "cross_wins"
	Draw       Outcome = "draw"
)

// IsFinished - true for every outcome except InProgress.
func (that Outcome) IsFinished() bool {
	return that != InProgress
}

// Winner - returns the winning mark, EmptyCell for a draw or an ongoing game.
func (that Outcome) Winner() Mark {
	switch that {
	case CircleWins:
		return Circle
	case CrossWins:
		return Cross
	default:
		return EmptyCell
	}
}

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game - the board plus the side to move. Cells change only through Place and Undo.
type Game struct {
	board [BoardSize]Mark
	turn  Side
}

func NewGame() *Game {
	return &Game{turn: SideCircle}
}

// NewGameFrom - builds a game from an arbitrary position. The turn is taken as given,
// alternation is not checked.
func NewGameFrom(board [BoardSize]Mark, turn Side) *Game {
	return &Game{board: board, turn: turn}
}

// Reset - empties the board and gives the move back to Circle.
func (that *Game) Reset() {
	that.board = [BoardSize]Mark{}
	that.turn = SideCircle
}

func (that *Game) Turn() Side {
	return that.turn
}

// Board - returns a copy of the cells.
func (that *Game) Board() [BoardSize]Mark {
	return that.board
}

func (that *Game) MarkAt(cell int) Mark {
	mustBeValid(cell)
	return that.board[cell]
}

func (that *Game) MoveCount() int {
	count := 0
	for _, cell := range that.board {
		if cell != EmptyCell {
			count++
		}
	}
	return count
}

// Place - marks the cell for the side to move and passes the turn.
func (that *Game) Place(cell int) error {
	mustBeValid(cell)

	if that.board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.board[cell] = that.turn.Mark()
	that.turn = that.turn.Opponent()

	return nil
}

// Undo - clears the cell and hands the turn back. Inverse of Place.
func (that *Game) Undo(cell int) error {
	mustBeValid(cell)

	if that.board[cell] == EmptyCell {
		return apperror.ErrCellAlreadyEmpty
	}

	that.board[cell] = EmptyCell
	that.turn = that.turn.Opponent()

	return nil
}

// LegalMoves - empty cells in ascending order.
func (that *Game) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that.board {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}
	return moves
}

func (that *Game) Outcome() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that.board[combo[0]], that.board[combo[1]], that.board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			if a == Circle {
				return CircleWins
			}
			return CrossWins
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.board {
		if cell == EmptyCell {
			return InProgress
		}
	}

	return Draw
}

// String - compact row-major form, "." for an empty cell, e.g. "XX.OO....".
func (that *Game) String() string {
	var sb strings.Builder
	for _, cell := range that.board {
		if cell == EmptyCell {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(string(cell))
	}
	return sb.String()
}

// ValidCell - reports whether the index addresses a cell on the board.
func ValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func mustBeValid(cell int) {
	if !ValidCell(cell) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell))
	}
}
