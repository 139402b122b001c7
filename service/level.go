package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/grid-maze/game"
	"github.com/beka-birhanu/grid-maze/game/maze"
	"github.com/beka-birhanu/grid-maze/game/rng"
	"github.com/beka-birhanu/grid-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

var (
	ErrLevelOver     = errors.New("level is already won")
	ErrMissingLogger = errors.New("logger is required")
	ErrNilGrid       = errors.New("maze factory returned no grid")
)

// State is the lifecycle stage of a level.
type State uint8

const (
	Generating State = iota
	Playing
	Won
)

func (s State) String() string {
	switch s {
	case Generating:
		return "GENERATING"
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	}
	return "UNKNOWN"
}

var _ i.LevelController = &Level{}

// Level drives one generate, play, win cycle over a single maze.
// A Level is owned by one caller and is not safe for concurrent use.
type Level struct {
	id     uuid.UUID
	state  State
	grid   game.Grid
	player game.Player
	last   game.MessageKind
	logger general_i.Logger
}

// Config holds the dependencies of a level.
type Config struct {
	// Requested maze dimensions; even values are rounded up.
	Width  int
	Height int

	// Source of generator tie-breaks. Defaults to OS entropy.
	Rand game.RandSource

	// Builds the grid. Defaults to maze.New.
	MazeFactory func(int, int, game.RandSource) (game.Grid, error)

	Logger general_i.Logger
}

// NewLevel generates a maze and places the player at its start, facing north.
func NewLevel(c *Config) (*Level, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	factory := c.MazeFactory
	if factory == nil {
		factory = maze.New
	}

	r := c.Rand
	if r == nil {
		r = rng.New()
	}

	l := &Level{
		id:     uuid.New(),
		state:  Generating,
		logger: c.Logger,
	}

	grid, err := factory(c.Width, c.Height, r)
	if err != nil {
		l.logger.Error(fmt.Sprintf("generating maze for level %s: %s", l.id, err))
		return nil, fmt.Errorf("creating level: %w", err)
	}
	if grid == nil {
		l.logger.Error(fmt.Sprintf("generating maze for level %s: %s", l.id, ErrNilGrid))
		return nil, fmt.Errorf("creating level: %w", ErrNilGrid)
	}

	l.grid = grid
	l.player = game.NewPlayer(game.StartPosition(), game.North)
	l.last = game.Welcome
	l.state = Playing
	l.logger.Info(fmt.Sprintf("started level %s (%dx%d)", l.id, grid.Width(), grid.Height()))
	return l, nil
}

// ID returns the level's unique identifier.
func (l *Level) ID() uuid.UUID {
	return l.id
}

// State returns the current lifecycle stage.
func (l *Level) State() State {
	return l.state
}

// Grid returns the level's maze.
func (l *Level) Grid() game.Grid {
	return l.grid
}

// View implements i.LevelController.
func (l *Level) View() game.Observation {
	return game.NewObservation(l.id, l.grid, l.player, l.last, l.state == Won)
}

// Step implements i.LevelController. It applies cmd to the player and ends
// the level once the player stands on the exit. Commands sent after the
// level is won are rejected with ErrLevelOver.
func (l *Level) Step(cmd game.Command) (game.Observation, error) {
	if l.state == Won {
		return l.View(), ErrLevelOver
	}

	outcome, err := game.Apply(l.grid, l.player, cmd)
	if err != nil {
		return l.View(), err
	}

	l.player = outcome.Player
	l.last = outcome.Kind
	if l.player.Position() == l.grid.Exit() {
		l.state = Won
		l.logger.Info(fmt.Sprintf("level %s won", l.id))
	}

	return l.View(), nil
}
