// Package notation converts square names like "H3" into board positions.
package notation

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/checkers-cli/internal/apperror"
	"github.com/rocketscienceinc/checkers-cli/internal/entity"
)

const (
	firstColumn = 'A'
	firstRow    = '1'

	separator = " "
)

// ParseMove - splits "H3 G4" into start and end positions.
func ParseMove(line string) (entity.Position, entity.Position, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 2 {
		return entity.Position{}, entity.Position{}, fmt.Errorf("%w: expected two squares, got %q", apperror.ErrMalformedMove, line)
	}

	from, err := ParsePosition(parts[0])
	if err != nil {
		return entity.Position{}, entity.Position{}, fmt.Errorf("start square: %w", err)
	}

	to, err := ParsePosition(parts[1])
	if err != nil {
		return entity.Position{}, entity.Position{}, fmt.Errorf("end square: %w", err)
	}

	return from, to, nil
}

// ParsePosition - reads an uppercase column letter followed by a row digit.
func ParsePosition(token string) (entity.Position, error) {
	if len(token) != 2 {
		return entity.Position{}, fmt.Errorf("%w: square %q must be a letter and a digit", apperror.ErrMalformedMove, token)
	}

	letter, digit := token[0], token[1]
	if !isUpper(letter) || !isDigit(digit) {
		return entity.Position{}, fmt.Errorf("%w: square %q must be a letter and a digit", apperror.ErrMalformedMove, token)
	}

	pos := entity.Position{
		Row: int(digit) - firstRow,
		Col: int(letter) - firstColumn,
	}

	if !pos.InBounds() {
		return entity.Position{}, fmt.Errorf("%w: square %q", apperror.ErrOutOfRange, token)
	}

	return pos, nil
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
