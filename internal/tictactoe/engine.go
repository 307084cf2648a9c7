package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// WinScore - the magnitude of a won position. Cross wins score positive.
const WinScore = 5000

// minScore is below any value Negamax can return.
const minScore = -1_000_000

// Evaluate - scores a position from Cross's point of view. Only terminal positions
// score non-zero.
func Evaluate(game *entity.Game) int {
	switch game.Outcome() {
	case entity.CrossWins:
		return WinScore
	case entity.CircleWins:
		return -WinScore
	default:
		return 0
	}
}

// Negamax - the value of the position for the side to move under perfect play by
// both sides. The game is restored before returning.
func Negamax(game *entity.Game) int {
	if game.Outcome().IsFinished() {
		return Evaluate(game) * game.Turn().Sign()
	}

	best := minScore
	for _, cell := range game.LegalMoves() {
		play(game, cell)
		best = max(best, -Negamax(game))
		takeBack(game, cell)
	}

	return best
}

// BestMove - finds the cell with the highest score for the side to move, without
// changing the game. Ties go to the lowest index.
func BestMove(game *entity.Game) (int, int, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return 0, 0, apperror.ErrNoLegalMoves
	}

	bestCell, bestScore := moves[0], minScore
	for _, cell := range moves {
		play(game, cell)
		score := -Negamax(game)
		takeBack(game, cell)

		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, bestScore, nil
}

// ChooseBestMove - plays the best move for the side to move and returns its cell and
// negamax score.
func ChooseBestMove(game *entity.Game) (int, int, error) {
	cell, score, err := BestMove(game)
	if err != nil {
		return 0, 0, err
	}

	if err = game.Place(cell); err != nil {
		return 0, 0, fmt.Errorf("failed to place best move %d: %w", cell, err)
	}

	return cell, score, nil
}

// play and takeBack panic: a failure here means the search broke the place/undo pairing.
func play(game *entity.Game, cell int) {
	if err := game.Place(cell); err != nil {
		panic(fmt.Errorf("search placed on cell %d: %w", cell, err))
	}
}

func takeBack(game *entity.Game, cell int) {
	if err := game.Undo(cell); err != nil {
		panic(fmt.Errorf("search retracted cell %d: %w", cell, err))
	}
}
