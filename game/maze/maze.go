/*
Package maze provides tools for creating and inspecting rectangular character mazes.

It defines the `GridMaze` structure, a W×H grid of wall and passage cells with
a single exit carved into the east border, and `Generate`, which carves a
perfect maze with an iterative recursive backtracker on the odd-coordinate
lattice.

Grids are immutable once generated; callers read them through the
`game.Grid` interface or the ASCII helper `Rows`.
*/
package maze

import "github.com/beka-birhanu/grid-maze/game"

var _ game.Grid = &GridMaze{}

// GridMaze represents a rectangular maze of wall and passage cells.
type GridMaze struct {
	width  int         // Number of columns (always odd).
	height int         // Number of rows (always odd).
	cells  []game.Cell // Row-major cell storage.
	exit   game.Position
}

// newWalled returns a grid of the given dimensions with every cell set to wall.
func newWalled(width, height int) *GridMaze {
	cells := make([]game.Cell, width*height)
	for i := range cells {
		cells[i] = game.Wall
	}

	return &GridMaze{
		width:  width,
		height: height,
		cells:  cells,
		exit:   exitFor(width, height),
	}
}

// exitFor returns the exit position for a grid of the given dimensions.
func exitFor(width, height int) game.Position {
	return game.Position{X: width - 1, Y: height - 2}
}

// Width implements game.Grid.
func (m *GridMaze) Width() int {
	return m.width
}

// Height implements game.Grid.
func (m *GridMaze) Height() int {
	return m.height
}

// Exit implements game.Grid.
func (m *GridMaze) Exit() game.Position {
	return m.exit
}

// InBound implements game.Grid.
func (m *GridMaze) InBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At implements game.Grid.
func (m *GridMaze) At(x, y int) game.Cell {
	if !m.InBound(x, y) {
		return game.Wall
	}
	return m.cells[y*m.width+x]
}

// carve turns the cell at p into a passage.
func (m *GridMaze) carve(p game.Position) {
	m.cells[p.Y*m.width+p.X] = game.Passage
}

// Bytes returns a copy of the cells in row-major order.
func (m *GridMaze) Bytes() []byte {
	b := make([]byte, len(m.cells))
	for i, c := range m.cells {
		b[i] = byte(c)
	}
	return b
}

// Rows returns the maze one string per row, '#' for walls and ' ' for passages.
func (m *GridMaze) Rows() []string {
	rows := make([]string, m.height)
	b := m.Bytes()
	for y := range rows {
		rows[y] = string(b[y*m.width : (y+1)*m.width])
	}
	return rows
}
