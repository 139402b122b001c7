package game

// StartPosition returns the cell every player begins a level on.
func StartPosition() Position {
	return Position{X: 1, Y: 1}
}

// Player is the pose of the player inside a maze. It is a value type: the
// movement engine returns new players rather than mutating existing ones.
type Player struct {
	pos Position
	dir Direction
}

// NewPlayer creates a player standing at pos facing dir.
func NewPlayer(pos Position, dir Direction) Player {
	return Player{pos: pos, dir: dir}
}

// Position returns the cell the player occupies.
func (p Player) Position() Position {
	return p.pos
}

// Direction returns the way the player is facing.
func (p Player) Direction() Direction {
	return p.dir
}

func (p Player) withPosition(pos Position) Player {
	p.pos = pos
	return p
}

func (p Player) withDirection(dir Direction) Player {
	p.dir = dir
	return p
}
