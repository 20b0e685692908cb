package entity

// Player wraps the mark a participant plays with. It never changes after creation.
type Player struct {
	mark Mark
}

func NewPlayer(mark Mark) *Player {
	return &Player{mark: mark}
}

func (that *Player) Mark() Mark {
	return that.mark
}

func (that *Player) String() string {
	return that.mark.String()
}
