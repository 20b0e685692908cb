package entity

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Mark identifies which side owns a piece.
type Mark uint8

const (
	MarkFirst Mark = iota + 1
	MarkSecond
)

func (that Mark) String() string {
	switch that {
	case MarkFirst:
		return PlayerX
	case MarkSecond:
		return PlayerO
	default:
		return "?"
	}
}

func (that Mark) Opponent() Mark {
	if that == MarkFirst {
		return MarkSecond
	}
	return MarkFirst
}

// Cell is either empty or occupied by exactly one mark. The zero value is an empty cell.
type Cell struct {
	mark Mark
}

var EmptyCell = Cell{}

func Occupied(mark Mark) Cell {
	return Cell{mark: mark}
}

func (that Cell) IsEmpty() bool {
	return that.mark == 0
}

func (that Cell) Mark() (Mark, bool) {
	return that.mark, that.mark != 0
}

func (that Cell) Holds(mark Mark) bool {
	return !that.IsEmpty() && that.mark == mark
}
