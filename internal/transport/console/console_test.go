package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-cli/internal/checkers"
	"github.com/rocketscienceinc/checkers-cli/internal/entity"
	"github.com/rocketscienceinc/checkers-cli/internal/usecase"
	mockedUseCase "github.com/rocketscienceinc/checkers-cli/mocks/usecase"
)

const boardText = "BOARD\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newConsole(board *mockedUseCase.MockgameBoard) *Console {
	controller := usecase.NewGameController(discardLogger(), board)
	return New(discardLogger(), controller, Options{Glyphs: checkers.DefaultGlyphs, NoClear: true})
}

func TestConsole_Run(t *testing.T) {
	t.Run("Rejected move reprompts the same player", func(t *testing.T) {
		// Given: a board that renders a stub and accepts one move
		board := mockedUseCase.NewMockgameBoard(t)
		board.EXPECT().Render(checkers.DefaultGlyphs).Return(boardText)
		board.EXPECT().
			MovePiece(entity.Position{Row: 5, Col: 0}, entity.Position{Row: 4, Col: 1}, entity.MarkFirst).
			Return(nil).
			Once()
		board.EXPECT().IsGameOver().Return(false).Once()

		in := strings.NewReader("h3 g4\n\nA6 B5\n")
		var out bytes.Buffer

		// When: the console runs until input ends
		err := newConsole(board).Run(context.Background(), in, &out)

		// Then: the input closed error is returned
		require.ErrorIs(t, err, ErrInputClosed)

		// Then: X was prompted twice, then O once
		expected := boardText + "X's turn. Enter move (e.g. H3 G4): \n" +
			"Invalid move! Press Enter to try again.\n" +
			boardText + "X's turn. Enter move (e.g. H3 G4): \n" +
			boardText + "O's turn. Enter move (e.g. H3 G4): \n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Winning move ends the loop", func(t *testing.T) {
		// Given: a board that is over after the first move
		board := mockedUseCase.NewMockgameBoard(t)
		board.EXPECT().Render(mock.Anything).Return(boardText)
		board.EXPECT().MovePiece(mock.Anything, mock.Anything, entity.MarkFirst).Return(nil).Once()
		board.EXPECT().IsGameOver().Return(true).Once()

		in := strings.NewReader("C6 D5\nignored\n")
		var out bytes.Buffer

		// When: the console runs
		err := newConsole(board).Run(context.Background(), in, &out)

		// Then: X is declared the winner after a redraw
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), boardText+"X wins!\n"))
	})

	t.Run("Canceled context stops waiting for input", func(t *testing.T) {
		// Given: an input that never delivers a line
		board := mockedUseCase.NewMockgameBoard(t)
		board.EXPECT().Render(mock.Anything).Return(boardText)

		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the console runs with a canceled context
		err := newConsole(board).Run(ctx, reader, io.Discard)

		// Then: the cancellation is reported
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Clears the screen unless disabled", func(t *testing.T) {
		// Given: a console with screen clearing
		board := mockedUseCase.NewMockgameBoard(t)
		board.EXPECT().Render(mock.Anything).Return(boardText)

		controller := usecase.NewGameController(discardLogger(), board)
		console := New(discardLogger(), controller, Options{Glyphs: checkers.DefaultGlyphs})

		var out bytes.Buffer

		// When: the input is empty
		err := console.Run(context.Background(), strings.NewReader(""), &out)

		// Then: the board was drawn on a cleared screen
		require.ErrorIs(t, err, ErrInputClosed)
		assert.True(t, strings.HasPrefix(out.String(), clearScreen+boardText))
	})

	t.Run("Real board rejects H3 G4 for X", func(t *testing.T) {
		// Given: a fresh game
		controller := usecase.NewGameController(discardLogger(), checkers.NewBoard())
		console := New(discardLogger(), controller, Options{Glyphs: checkers.DefaultGlyphs, NoClear: true})

		var out bytes.Buffer

		// When: X enters H3 G4
		err := console.Run(context.Background(), strings.NewReader("H3 G4\n\n"), &out)

		// Then: the move is refused and X is prompted again
		require.ErrorIs(t, err, ErrInputClosed)
		assert.Contains(t, out.String(), invalidMessage)
		assert.Equal(t, 2, strings.Count(out.String(), "X's turn."))
		assert.NotContains(t, out.String(), "O's turn.")
	})
}

func TestConsole_Run_LongLine(t *testing.T) {
	// Given: a line far longer than any scanner buffer, then a legal move
	controller := usecase.NewGameController(discardLogger(), checkers.NewBoard())
	console := New(discardLogger(), controller, Options{Glyphs: checkers.DefaultGlyphs, NoClear: true})

	in := strings.NewReader(strings.Repeat("A", 70000) + "\n\nC6 D5\n")
	var out bytes.Buffer

	// When: the console runs until input ends
	err := console.Run(context.Background(), in, &out)

	// Then: the long line is an ordinary rejection and play goes on
	require.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, out.String(), invalidMessage)
	assert.Contains(t, out.String(), "O's turn.")
	assert.Equal(t, entity.MarkSecond, controller.CurrentPlayer().Mark())
}

func TestConsole_Run_PlayToWin(t *testing.T) {
	// Given: a real board where X can take O's last piece
	board, err := checkers.NewBoardWithPieces(map[entity.Position]entity.Mark{
		{Row: 5, Col: 2}: entity.MarkFirst,
		{Row: 4, Col: 3}: entity.MarkSecond,
	})
	require.NoError(t, err)

	controller := usecase.NewGameController(discardLogger(), board)
	console := New(discardLogger(), controller, Options{Glyphs: checkers.DefaultGlyphs, NoClear: true})

	var out bytes.Buffer

	// When: X plays the capture
	err = console.Run(context.Background(), strings.NewReader("C6 E4\n"), &out)

	// Then: the loop ends with X declared the winner on a redrawn board
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "8 □ ░ □ ░ □ ░ □ ░ \nX wins!\n"))
	assert.Equal(t, entity.MarkFirst, controller.Winner().Mark())
}

func TestReadLines(t *testing.T) {
	t.Run("Last line without newline is delivered", func(t *testing.T) {
		// Given: input with CRLF endings and no final newline
		lines := readLines(context.Background(), strings.NewReader("A6 B5\r\nB5 C4"))

		// Then: both lines arrive trimmed, then EOF
		assert.Equal(t, "A6 B5", (<-lines).text)
		assert.Equal(t, "B5 C4", (<-lines).text)
		assert.ErrorIs(t, (<-lines).err, io.EOF)

		_, ok := <-lines
		assert.False(t, ok)
	})

	t.Run("Reader stops once the context is done", func(t *testing.T) {
		// Given: pending input nobody consumes
		ctx, cancel := context.WithCancel(context.Background())
		lines := readLines(ctx, strings.NewReader("A6 B5\nB5 C4\nC4 D3\n"))
		assert.Equal(t, "A6 B5", (<-lines).text)

		// When: the context is canceled
		cancel()

		// Then: the channel is closed without draining the rest
		require.Eventually(t, func() bool {
			select {
			case _, ok := <-lines:
				return !ok
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
	})
}
