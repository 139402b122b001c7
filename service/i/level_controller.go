package i

import "github.com/beka-birhanu/grid-maze/game"

// LevelController runs a single maze level on behalf of a shell.
type LevelController interface {
	// Step applies a command and returns the resulting observation.
	Step(game.Command) (game.Observation, error)

	// View returns the current observation without changing anything.
	View() game.Observation
}

// LevelFactory creates a fresh level each time the shell starts one.
type LevelFactory func() (LevelController, error)
