package maze

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/grid-maze/game"
)

const (
	MinDimension     = 5   // Smallest accepted width or height after normalization.
	MaxDimension     = 999 // Largest accepted width or height after normalization.
	DefaultDimension = 21
)

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// Normalize rounds an even dimension up to the next odd value.
func Normalize(d int) int {
	if d%2 == 0 {
		return d + 1
	}
	return d
}

// Generate carves a maze of the given dimensions using an iterative recursive
// backtracker on the odd lattice, then opens the exit at (W-1, H-2).
// Even dimensions are incremented. The same dimensions and random stream
// always yield the same maze.
func Generate(width, height int, r game.RandSource) (*GridMaze, error) {
	width, height = Normalize(width), Normalize(height)
	if min(width, height) < MinDimension || max(width, height) > MaxDimension {
		return nil, fmt.Errorf("generating %dx%d maze: %w: each side must be between %d and %d", width, height, ErrInvalidDimensions, MinDimension, MaxDimension)
	}

	m := newWalled(width, height)
	m.carveFrom(game.StartPosition(), r)
	m.carve(m.exit)
	return m, nil
}

// carveFrom runs the depth-first carve starting at start.
func (m *GridMaze) carveFrom(start game.Position, r game.RandSource) {
	stack := []game.Position{start}
	m.carve(start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		moves := m.unvisitedNeighbors(cur)
		if len(moves) == 0 {
			pop(&stack)
			continue
		}

		move := moves[r.Intn(len(moves))]
		m.carve(move.Between())
		m.carve(move.To)
		stack = append(stack, move.To)
	}
}

// unvisitedNeighbors returns the lattice neighbours of pos that stay strictly
// inside the border and are still walls, in west, east, north, south order.
func (m *GridMaze) unvisitedNeighbors(pos game.Position) []Move {
	var result []Move
	for _, d := range latticeSteps {
		next := pos.Add(d)
		if next.X <= 0 || next.X >= m.width-1 || next.Y <= 0 || next.Y >= m.height-1 {
			continue
		}
		if m.At(next.X, next.Y) == game.Wall {
			result = append(result, Move{From: pos, To: next})
		}
	}
	return result
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]game.Position) game.Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// New is a game.Grid factory around Generate.
func New(width, height int, r game.RandSource) (game.Grid, error) {
	m, err := Generate(width, height, r)
	if err != nil {
		return nil, err
	}
	return m, nil
}
