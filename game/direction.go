package game

// Direction is the way a player is facing.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var (
	leftOf = [...]Direction{
		North: West,
		East:  North,
		South: East,
		West:  South,
	}

	rightOf = [...]Direction{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}

	// forward holds the unit step taken when moving ahead in each direction.
	forward = [...]Position{
		North: {X: 0, Y: -1},
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: 1},
		West:  {X: -1, Y: 0},
	}

	directionNames = [...]string{
		North: "NORTH",
		East:  "EAST",
		South: "SOUTH",
		West:  "WEST",
	}
)

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Left returns the direction after a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	return leftOf[d]
}

// Right returns the direction after a quarter turn clockwise.
func (d Direction) Right() Direction {
	return rightOf[d]
}

// Forward returns the unit vector pointing the way d faces.
func (d Direction) Forward() Position {
	return forward[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return directionNames[d]
}
