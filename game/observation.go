package game

import "github.com/google/uuid"

// Observation is the externally visible state of a level after a command.
type Observation struct {
	LevelID     uuid.UUID
	Width       int
	Height      int
	PlayerX     int
	PlayerY     int
	PlayerDir   Direction
	LastMessage MessageKind
	Won         bool
	grid        Grid
}

// NewObservation snapshots the player on grid g.
func NewObservation(id uuid.UUID, g Grid, p Player, last MessageKind, won bool) Observation {
	return Observation{
		LevelID:     id,
		Width:       g.Width(),
		Height:      g.Height(),
		PlayerX:     p.pos.X,
		PlayerY:     p.pos.Y,
		PlayerDir:   p.dir,
		LastMessage: last,
		Won:         won,
		grid:        g,
	}
}

// Cell returns the maze cell at (x, y). Without a grid every cell reads as Wall.
func (o Observation) Cell(x, y int) Cell {
	if o.grid == nil {
		return Wall
	}
	return o.grid.At(x, y)
}
