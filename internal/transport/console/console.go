package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/checkers-cli/internal/checkers"
	"github.com/rocketscienceinc/checkers-cli/internal/entity"
	"github.com/rocketscienceinc/checkers-cli/internal/usecase"
)

const (
	clearScreen = "\033[H\033[2J"

	promptFormat   = "%s's turn. Enter move (e.g. H3 G4): "
	invalidMessage = "Invalid move! Press Enter to try again."
	winFormat      = "%s wins!"
)

var ErrInputClosed = errors.New("input closed")

type gameController interface {
	MakeTurn(move string) (usecase.State, error)
	CurrentPlayer() *entity.Player
	Winner() *entity.Player
	Render(glyphs checkers.Glyphs) string
}

type Options struct {
	Glyphs  checkers.Glyphs
	NoClear bool
}

type Console struct {
	logger     *slog.Logger
	controller gameController
	options    Options
}

func New(logger *slog.Logger, controller gameController, options Options) *Console {
	return &Console{
		logger:     logger.With("component", "console"),
		controller: controller,
		options:    options,
	}
}

// Run - drives the game until somebody wins, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	for {
		that.draw(out)
		fmt.Fprintf(out, promptFormat+"\n", that.controller.CurrentPlayer())

		move, err := that.nextLine(ctx, lines)
		if err != nil {
			return err
		}

		state, err := that.controller.MakeTurn(move)
		switch {
		case err != nil:
			log.Debug("turn rejected", "player", that.controller.CurrentPlayer().String(), "error", err)

			fmt.Fprintln(out, invalidMessage)
			if _, err = that.nextLine(ctx, lines); err != nil {
				return err
			}
		case state == usecase.StateGameOver:
			that.draw(out)
			fmt.Fprintf(out, winFormat+"\n", that.controller.Winner())

			return nil
		}
	}
}

func (that *Console) draw(out io.Writer) {
	if !that.options.NoClear {
		fmt.Fprint(out, clearScreen)
	}

	fmt.Fprint(out, that.controller.Render(that.options.Glyphs))
}

func (that *Console) nextLine(ctx context.Context, lines <-chan line) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for input: %w", ctx.Err())
	case next, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}

		if errors.Is(next.err, io.EOF) {
			return "", ErrInputClosed
		}

		if next.err != nil {
			return "", fmt.Errorf("failed to read input: %w", next.err)
		}

		return next.text, nil
	}
}
