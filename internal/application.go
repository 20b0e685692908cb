package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/checkers-cli/internal/checkers"
	"github.com/rocketscienceinc/checkers-cli/internal/config"
	"github.com/rocketscienceinc/checkers-cli/internal/transport/console"
	"github.com/rocketscienceinc/checkers-cli/internal/usecase"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play - wires a fresh board to the console and plays until the game ends.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	board := checkers.NewBoard()
	gameController := usecase.NewGameController(logger, board)
	gameConsole := console.New(logger, gameController, console.Options{
		Glyphs: checkers.Glyphs{
			Neutral: conf.Glyphs.Neutral,
			Empty:   conf.Glyphs.Empty,
		},
		NoClear: conf.NoClear,
	})

	log.Debug("Starting game")

	err := gameConsole.Run(ctx, in, out)
	switch {
	case err == nil:
		log.Info("Game finished", "winner", gameController.Winner().String())
		return nil
	case errors.Is(err, console.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Game abandoned", "reason", err)
		return nil
	default:
		return fmt.Errorf("game loop failed: %w", err)
	}
}
