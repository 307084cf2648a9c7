package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the game session on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	term := console.New(in, out, !conf.NoColor)
	botService := service.NewBotService(logger)
	session := usecase.NewSession(logger, term, botService)

	log.Info("Starting session", "mode", string(conf.FirstMode()))

	// Run blocks on reading input; shutdown does not wait for it.
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- session.Run(ctx, conf.FirstMode())
	}()

	select {
	case err := <-sessionErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("session failed: %w", err)
		}
		log.Info("Session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
