package checkers

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/checkers-cli/internal/entity"
)

const header = "   A B C D E F G H"

// Glyphs holds the symbols for squares without a piece. Occupied squares always show the mark.
type Glyphs struct {
	Neutral string
	Empty   string
}

var DefaultGlyphs = Glyphs{
	Neutral: "░",
	Empty:   "□",
}

func (that Glyphs) glyph(pos entity.Position, cell entity.Cell) string {
	if !pos.IsPlayable() {
		return that.Neutral
	}

	if mark, ok := cell.Mark(); ok {
		return mark.String()
	}

	return that.Empty
}

// Render - draws the board with a column header and 1-based row numbers.
func (that *Board) Render(glyphs Glyphs) string {
	var sb strings.Builder

	sb.WriteString(header)
	sb.WriteByte('\n')

	for row := range entity.BoardSize {
		sb.WriteString(strconv.Itoa(row + 1))
		sb.WriteByte(' ')

		for col := range entity.BoardSize {
			pos := entity.Position{Row: row, Col: col}
			sb.WriteString(glyphs.glyph(pos, that.At(pos)))
			sb.WriteByte(' ')
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
