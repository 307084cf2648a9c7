package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type terminal interface {
	RenderBoard(game *entity.Game)
	AnnounceOutcome(outcome entity.Outcome)
	ReportOccupied()

	ReadCell() (int, error)
	ReadTurnOrder() (entity.Side, error)
	ReadMode() (entity.Mode, error)
	ReadQuit() (bool, error)
}

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

// Session - plays rounds on one board until the player quits. Who plays which side
// is passed in per round.
type Session struct {
	logger *slog.Logger

	game     *entity.Game
	terminal terminal
	bot      botService
}

func NewSession(logger *slog.Logger, terminal terminal, bot botService) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		game:     entity.NewGame(),
		terminal: terminal,
		bot:      bot,
	}
}

// Run - the menu loop. firstMode, when set, skips the menu for the first round.
// Returns nil when the player quits or closes the input.
func (that *Session) Run(ctx context.Context, firstMode entity.Mode) error {
	mode := firstMode

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if mode == entity.ModeNone {
			var err error
			if mode, err = that.terminal.ReadMode(); err != nil {
				return endOfInput(err)
			}
		}

		if err := that.playRound(ctx, mode); err != nil {
			return endOfInput(err)
		}
		mode = entity.ModeNone

		quit, err := that.terminal.ReadQuit()
		if err != nil {
			return endOfInput(err)
		}

		if quit {
			that.logger.InfoContext(ctx, "session finished")
			return nil
		}

		that.game.Reset()
	}
}

func (that *Session) playRound(ctx context.Context, mode entity.Mode) error {
	switch mode {
	case entity.ModeMultiplayer:
		return that.PlayMultiplayer(ctx)
	case entity.ModeBot:
		human, err := that.terminal.ReadTurnOrder()
		if err != nil {
			return err
		}
		return that.PlayAgainstBot(ctx, human)
	default:
		return nil
	}
}

// PlayMultiplayer - two humans share the terminal until the round ends.
func (that *Session) PlayMultiplayer(ctx context.Context) error {
	log := that.roundLogger(entity.ModeMultiplayer)

	that.terminal.RenderBoard(that.game)
	for !that.game.Outcome().IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := that.humanTurn(); err != nil {
			return err
		}
		that.terminal.RenderBoard(that.game)
	}

	that.finishRound(ctx, log)

	return nil
}

// PlayAgainstBot - the human plays the given side, the engine plays the other.
func (that *Session) PlayAgainstBot(ctx context.Context, human entity.Side) error {
	log := that.roundLogger(entity.ModeBot).With("human", human.String())
	seats := entity.Seats(human)

	that.terminal.RenderBoard(that.game)
	for !that.game.Outcome().IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if seats[that.game.Turn()].Bot {
			if _, err := that.bot.MakeTurn(ctx, that.game); err != nil {
				return fmt.Errorf("failed to make bot turn: %w", err)
			}
		} else if err := that.humanTurn(); err != nil {
			return err
		}

		that.terminal.RenderBoard(that.game)
	}

	that.finishRound(ctx, log)

	return nil
}

func (that *Session) humanTurn() error {
	for {
		cell, err := that.terminal.ReadCell()
		if err != nil {
			return fmt.Errorf("failed to read cell: %w", err)
		}

		err = that.game.Place(cell)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.terminal.ReportOccupied()
			continue
		}

		return err
	}
}

func (that *Session) roundLogger(mode entity.Mode) *slog.Logger {
	return that.logger.With("round", uuid.NewString(), "mode", string(mode))
}

func (that *Session) finishRound(ctx context.Context, log *slog.Logger) {
	outcome := that.game.Outcome()

	that.terminal.AnnounceOutcome(outcome)
	log.InfoContext(ctx, "round finished",
		"outcome", string(outcome),
		"moves", that.game.MoveCount(),
		"position", that.game.String(),
	)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
