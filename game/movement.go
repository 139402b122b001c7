package game

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned for command values outside the four known ones.
var ErrUnknownCommand = errors.New("unknown command")

// Apply computes the result of issuing cmd to p inside g. It never mutates its
// arguments. Bumping into a wall or the edge of the grid is a normal outcome
// and leaves the player untouched. The Won flag of the result is always false;
// win detection belongs to the level controller.
func Apply(g Grid, p Player, cmd Command) (Outcome, error) {
	switch cmd {
	case TurnLeft:
		return Outcome{Player: p.withDirection(p.dir.Left()), Kind: Turned}, nil
	case TurnRight:
		return Outcome{Player: p.withDirection(p.dir.Right()), Kind: Turned}, nil
	case StepForward:
		return step(g, p, p.dir.Forward(), Moved, BumpWall, BumpBoundary), nil
	case StepBackward:
		return step(g, p, p.dir.Forward().Neg(), Backed, BackWall, BackBoundary), nil
	default:
		return Outcome{Player: p}, fmt.Errorf("applying command %d: %w", cmd, ErrUnknownCommand)
	}
}

// step moves p by delta when the destination is an in-bound passage.
func step(g Grid, p Player, delta Position, moved, wall, boundary MessageKind) Outcome {
	next := p.pos.Add(delta)
	if !g.InBound(next.X, next.Y) {
		return Outcome{Player: p, Kind: boundary}
	}

	if !g.At(next.X, next.Y).IsPassage() {
		return Outcome{Player: p, Kind: wall}
	}

	return Outcome{Player: p.withPosition(next), Kind: moved}
}
