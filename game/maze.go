package game

// Cell is a single square of a maze grid.
type Cell byte

// Recognized cell symbols.
const (
	Wall    Cell = '#'
	Passage Cell = ' '
)

// IsPassage reports whether the cell can be walked on.
func (c Cell) IsPassage() bool {
	return c == Passage
}

// Position is a grid coordinate. X grows east, Y grows south.
type Position struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neg returns the opposite vector.
func (p Position) Neg() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// Grid defines the read-only view of a generated maze.
type Grid interface {
	// At returns the cell at (x, y). Out of range coordinates read as Wall.
	At(x, y int) Cell

	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// Exit returns the position of the single opening in the border.
	Exit() Position

	// InBound reports whether (x, y) lies inside the grid.
	InBound(x, y int) bool
}

// RandSource produces uniform integers for generator tie-breaks.
type RandSource interface {
	// Intn returns a uniform integer in [0, n). n must be at least 1.
	Intn(n int) int
}
