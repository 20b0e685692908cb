package checkers

import (
	"fmt"

	"github.com/rocketscienceinc/checkers-cli/internal/apperror"
	"github.com/rocketscienceinc/checkers-cli/internal/entity"
)

// homeRows is the number of rows each side fills at setup.
const homeRows = 3

type Board struct {
	grid [entity.BoardSize][entity.BoardSize]entity.Cell
}

func NewBoard() *Board {
	board := &Board{}
	board.Setup()

	return board
}

// NewBoardWithPieces - returns a board holding only the given pieces. Positions that are off the board
// or not playable are rejected.
func NewBoardWithPieces(pieces map[entity.Position]entity.Mark) (*Board, error) {
	board := &Board{}

	for pos, mark := range pieces {
		if !pos.InBounds() || !pos.IsPlayable() {
			return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, squareName(pos))
		}

		board.grid[pos.Row][pos.Col] = entity.Occupied(mark)
	}

	return board, nil
}

// Setup - clears the grid and places twelve pieces per side on the playable squares.
func (that *Board) Setup() {
	for row := range that.grid {
		for col := range that.grid[row] {
			that.grid[row][col] = entity.EmptyCell
		}
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			pos := entity.Position{Row: row, Col: col}
			if !pos.IsPlayable() {
				continue
			}

			switch {
			case row < homeRows:
				that.grid[row][col] = entity.Occupied(entity.MarkSecond)
			case row >= entity.BoardSize-homeRows:
				that.grid[row][col] = entity.Occupied(entity.MarkFirst)
			}
		}
	}
}

func (that *Board) At(pos entity.Position) entity.Cell {
	return that.grid[pos.Row][pos.Col]
}

// MovePiece - executes a simple step or a jump capture for mark. The board is left untouched on error.
func (that *Board) MovePiece(from, to entity.Position, mark entity.Mark) error {
	if err := that.validateMove(from, to, mark); err != nil {
		return fmt.Errorf("%s -> %s: %w", squareName(from), squareName(to), err)
	}

	if delta(from, to) == 2 {
		mid := midpoint(from, to)
		that.grid[mid.Row][mid.Col] = entity.EmptyCell
	}

	that.grid[from.Row][from.Col] = entity.EmptyCell
	that.grid[to.Row][to.Col] = entity.Occupied(mark)

	return nil
}

// validateMove - checks occupancy first, then the move shape.
func (that *Board) validateMove(from, to entity.Position, mark entity.Mark) error {
	if !from.InBounds() || !to.InBounds() {
		return apperror.ErrOutOfRange
	}

	if !that.At(from).Holds(mark) {
		return fmt.Errorf("%w: no %s piece on the start square", apperror.ErrIllegalMove, mark)
	}

	if !that.At(to).IsEmpty() {
		return fmt.Errorf("%w: target square is occupied", apperror.ErrIllegalMove)
	}

	switch delta(from, to) {
	case 1:
		return nil
	case 2:
		mid := that.At(midpoint(from, to))
		if mid.IsEmpty() || mid.Holds(mark) {
			return fmt.Errorf("%w: nothing to capture", apperror.ErrIllegalMove)
		}
		return nil
	default:
		return fmt.Errorf("%w: move is not a diagonal step or jump", apperror.ErrIllegalMove)
	}
}

// IsGameOver - reports whether either side has no pieces left.
func (that *Board) IsGameOver() bool {
	return that.Count(entity.MarkFirst) == 0 || that.Count(entity.MarkSecond) == 0
}

func (that *Board) Count(mark entity.Mark) int {
	count := 0
	for row := range that.grid {
		for _, cell := range that.grid[row] {
			if cell.Holds(mark) {
				count++
			}
		}
	}

	return count
}

// delta returns the diagonal distance of a move, or 0 when the move is not a diagonal.
func delta(from, to entity.Position) int {
	dr, dc := abs(from.Row-to.Row), abs(from.Col-to.Col)
	if dr != dc {
		return 0
	}

	return dr
}

func midpoint(from, to entity.Position) entity.Position {
	return entity.Position{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func squareName(pos entity.Position) string {
	if !pos.InBounds() {
		return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	}

	return fmt.Sprintf("%c%d", 'A'+pos.Col, pos.Row+1)
}
