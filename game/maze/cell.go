package maze

import "github.com/beka-birhanu/grid-maze/game"

// Move represents a carving step between two lattice cells two squares apart.
type Move struct {
	From game.Position // Lattice cell the step starts at.
	To   game.Position // Unvisited lattice cell the step reaches.
}

// Between returns the wall cell separating From and To.
func (m Move) Between() game.Position {
	return game.Position{X: (m.From.X + m.To.X) / 2, Y: (m.From.Y + m.To.Y) / 2}
}

// latticeSteps lists the offsets to the four lattice neighbours.
var latticeSteps = [...]game.Position{
	{X: -2, Y: 0},
	{X: 2, Y: 0},
	{X: 0, Y: -2},
	{X: 0, Y: 2},
}

// IsLattice reports whether p has both coordinates odd.
func IsLattice(p game.Position) bool {
	return p.X%2 == 1 && p.Y%2 == 1
}
