package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/checkers-cli/internal/apperror"
	"github.com/rocketscienceinc/checkers-cli/internal/checkers"
	"github.com/rocketscienceinc/checkers-cli/internal/entity"
	"github.com/rocketscienceinc/checkers-cli/internal/notation"
)

type State int

const (
	StateAwaitingMove State = iota
	StateMoveAccepted
	StateMoveRejected
	StateGameOver
)

func (that State) String() string {
	switch that {
	case StateAwaitingMove:
		return "awaiting-move"
	case StateMoveAccepted:
		return "move-accepted"
	case StateMoveRejected:
		return "move-rejected"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

type gameBoard interface {
	MovePiece(from, to entity.Position, mark entity.Mark) error
	IsGameOver() bool
	Render(glyphs checkers.Glyphs) string
}

// GameController owns the board and decides whose turn it is.
type GameController struct {
	logger *slog.Logger
	board  gameBoard

	first  *entity.Player
	second *entity.Player

	current *entity.Player
	winner  *entity.Player
	state   State
}

func NewGameController(logger *slog.Logger, board gameBoard) *GameController {
	first := entity.NewPlayer(entity.MarkFirst)

	return &GameController{
		logger:  logger.With("component", "game-controller"),
		board:   board,
		first:   first,
		second:  entity.NewPlayer(entity.MarkSecond),
		current: first,
		state:   StateAwaitingMove,
	}
}

// MakeTurn - plays one move for the current player. It returns the outcome of the turn; a rejected
// move comes back together with the reason and leaves the turn with the same player.
func (that *GameController) MakeTurn(move string) (State, error) {
	log := that.logger.With("method", "MakeTurn", "player", that.current.String(), "move", move)

	if that.state == StateGameOver {
		return StateGameOver, apperror.ErrGameFinished
	}

	if err := that.applyMove(move); err != nil {
		log.Debug("move rejected", "error", err)

		that.state = StateMoveRejected
		return StateMoveRejected, err
	}

	if that.board.IsGameOver() {
		that.winner = that.current
		that.state = StateGameOver

		log.Info("game over", "winner", that.winner.String())
		return StateGameOver, nil
	}

	log.Debug("move accepted")

	that.swapTurn()
	that.state = StateMoveAccepted

	return StateMoveAccepted, nil
}

func (that *GameController) applyMove(move string) error {
	from, to, err := notation.ParseMove(move)
	if err != nil {
		return fmt.Errorf("failed to parse move: %w", err)
	}

	if err = that.board.MovePiece(from, to, that.current.Mark()); err != nil {
		return fmt.Errorf("failed to move piece: %w", err)
	}

	return nil
}

func (that *GameController) swapTurn() {
	if that.current == that.first {
		that.current = that.second
	} else {
		that.current = that.first
	}
}

func (that *GameController) CurrentPlayer() *entity.Player {
	return that.current
}

// Winner - returns nil until the game is over.
func (that *GameController) Winner() *entity.Player {
	return that.winner
}

// State - outcome of the last turn, StateAwaitingMove before the first one.
func (that *GameController) State() State {
	return that.state
}

func (that *GameController) IsFinished() bool {
	return that.state == StateGameOver
}

func (that *GameController) Render(glyphs checkers.Glyphs) string {
	return that.board.Render(glyphs)
}
