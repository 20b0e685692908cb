package entity

const BoardSize = 8

type Position struct {
	Row int
	Col int
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// IsPlayable reports whether the square is a dark one, the only kind that ever holds a piece.
func (that Position) IsPlayable() bool {
	return (that.Row+that.Col)%2 == 1
}
