package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the engine's best move for the side to move and returns the cell.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("bot turn canceled: %w", err)
	}

	position, side := game.String(), game.Turn()

	cell, score, err := tictactoe.ChooseBestMove(game)
	if err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.DebugContext(ctx, "bot moved",
		"position", position,
		"side", side.String(),
		"cell", cell,
		"score", score,
	)

	return cell, nil
}
