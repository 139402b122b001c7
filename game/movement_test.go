package game_test

import (
	"testing"

	"github.com/beka-birhanu/grid-maze/game"
	"github.com/beka-birhanu/grid-maze/game/maze"
	"github.com/beka-birhanu/grid-maze/game/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stringGrid is a hand drawn maze; the exit is taken as (W-1, H-2).
type stringGrid []string

func (g stringGrid) At(x, y int) game.Cell {
	if !g.InBound(x, y) {
		return game.Wall
	}
	return game.Cell(g[y][x])
}
func (g stringGrid) Width() int { return len(g[0]) }
func (g stringGrid) Height() int { return len(g) }
func (g stringGrid) Exit() game.Position { return game.Position{X: g.Width() - 1, Y: g.Height() - 2} }
func (g stringGrid) InBound(x, y int) bool { return x >= 0 && y >= 0 && x < g.Width() && y < g.Height() }

var corridor = stringGrid{
	"#######",
	"#     #",
	"# ### #",
	"#   #  ",
	"#######",
}

func at(x, y int, d game.Direction) game.Player {
	return game.NewPlayer(game.Position{X: x, Y: y}, d)
}

func TestApplyTurns(t *testing.T) {
	t.Run("Turn right from north faces east", func(t *testing.T) {
		out, err := game.Apply(corridor, at(1, 1, game.North), game.TurnRight)
		require.NoError(t, err)
		assert.Equal(t, game.Turned, out.Kind)
		assert.Equal(t, game.East, out.Player.Direction())
		assert.Equal(t, game.Position{X: 1, Y: 1}, out.Player.Position())
		assert.False(t, out.Won)
	})

	t.Run("Turn left cycles counter-clockwise", func(t *testing.T) {
		p := at(1, 1, game.North)
		want := []game.Direction{game.West, game.South, game.East, game.North}
		for _, d := range want {
			out, err := game.Apply(corridor, p, game.TurnLeft)
			require.NoError(t, err)
			assert.Equal(t, d, out.Player.Direction())
			p = out.Player
		}
	})

	t.Run("Left then right is identity", func(t *testing.T) {
		for _, d := range []game.Direction{game.North, game.East, game.South, game.West} {
			p := at(3, 1, d)
			for _, pair := range [][2]game.Command{{game.TurnLeft, game.TurnRight}, {game.TurnRight, game.TurnLeft}} {
				first, err := game.Apply(corridor, p, pair[0])
				require.NoError(t, err)
				second, err := game.Apply(corridor, first.Player, pair[1])
				require.NoError(t, err)
				assert.Equal(t, p, second.Player)
			}
		}
	})
}

func TestApplySteps(t *testing.T) {
	tests := []struct {
		name   string
		player game.Player
		cmd    game.Command
		kind   game.MessageKind
		want   game.Position
	}{
		{"Forward into border wall", at(1, 1, game.North), game.StepForward, game.BumpWall, game.Position{X: 1, Y: 1}},
		{"Forward along corridor", at(1, 1, game.East), game.StepForward, game.Moved, game.Position{X: 2, Y: 1}},
		{"Forward along lower corridor", at(1, 3, game.East), game.StepForward, game.Moved, game.Position{X: 2, Y: 3}},
		{"Forward blocked by inner wall", at(3, 3, game.East), game.StepForward, game.BumpWall, game.Position{X: 3, Y: 3}},
		{"Backward along corridor", at(2, 1, game.East), game.StepBackward, game.Backed, game.Position{X: 1, Y: 1}},
		{"Backward into wall", at(1, 1, game.South), game.StepBackward, game.BackWall, game.Position{X: 1, Y: 1}},
		{"Forward off the grid", at(6, 3, game.East), game.StepForward, game.BumpBoundary, game.Position{X: 6, Y: 3}},
		{"Backward off the grid", at(6, 3, game.West), game.StepBackward, game.BackBoundary, game.Position{X: 6, Y: 3}},
		{"Forward onto the exit", at(5, 3, game.East), game.StepForward, game.Moved, game.Position{X: 6, Y: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := game.Apply(corridor, tt.player, tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.want, out.Player.Position())
			assert.Equal(t, tt.player.Direction(), out.Player.Direction())
		})
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	p := at(1, 1, game.East)
	out, err := game.Apply(corridor, p, game.Command(42))
	assert.ErrorIs(t, err, game.ErrUnknownCommand)
	assert.Equal(t, p, out.Player)
}

func TestApplyStartOfGeneratedMaze(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		m, err := maze.Generate(21, 21, rng.NewSeeded(seed))
		require.NoError(t, err)

		out, err := game.Apply(m, at(1, 1, game.North), game.StepForward)
		require.NoError(t, err)
		assert.Equal(t, game.BumpWall, out.Kind)
		assert.Equal(t, at(1, 1, game.North), out.Player)
	}
}

// Random walks over generated mazes: bumps never move the player and a
// successful step is undone by stepping the other way.
func TestApplyRandomWalkProperties(t *testing.T) {
	commands := []game.Command{game.TurnLeft, game.TurnRight, game.StepForward, game.StepBackward}
	undo := map[game.Command]game.Command{game.StepForward: game.StepBackward, game.StepBackward: game.StepForward}

	for seed := uint64(0); seed < 25; seed++ {
		m, err := maze.Generate(15, 11, rng.NewSeeded(seed))
		require.NoError(t, err)

		pick := rng.NewSeeded(seed + 1000)
		p := game.NewPlayer(game.StartPosition(), game.North)
		for n := 0; n < 300; n++ {
			cmd := commands[pick.Intn(len(commands))]
			out, err := game.Apply(m, p, cmd)
			require.NoError(t, err)

			if out.Kind.IsBump() {
				assert.Equal(t, p, out.Player, "seed %d step %d", seed, n)
			}

			if out.Kind == game.Moved || out.Kind == game.Backed {
				back, err := game.Apply(m, out.Player, undo[cmd])
				require.NoError(t, err)
				assert.Equal(t, p, back.Player, "seed %d step %d", seed, n)
			}

			assert.True(t, m.At(out.Player.Position().X, out.Player.Position().Y).IsPassage())
			p = out.Player
		}
	}
}
