package shell

import (
	"fmt"

	"github.com/beka-birhanu/grid-maze/game"
)

const (
	WelcomeText       = "Welcome to Grid Maze!"
	UnknownText       = "Unknown command."
	EscapeText        = "You slip through the opening and escape the maze!"
	PlayAgainText     = "Play another level? (Y/N)"
	ControlsText      = "Controls: W = forward, S = backward, A = left, D = right, Q = quit"
	clearScreenEscape = "\033[H\033[2J"
)

var (
	directionNames = map[game.Direction]string{
		game.North: "north",
		game.East:  "east",
		game.South: "south",
		game.West:  "west",
	}

	compassLines = map[game.Direction]string{
		game.North: "[Compass] Facing NORTH ↑",
		game.East:  "[Compass] Facing EAST  →",
		game.South: "[Compass] Facing SOUTH ↓",
		game.West:  "[Compass] Facing WEST  ←",
	}

	playerIcons = map[game.Direction]byte{
		game.North: '^',
		game.East:  '>',
		game.South: 'v',
		game.West:  '<',
	}
)

// DirectionName returns the lower-case name used in outcome messages.
func DirectionName(d game.Direction) string {
	return directionNames[d]
}

// Compass returns the heading line drawn above the maze.
func Compass(d game.Direction) string {
	if line, ok := compassLines[d]; ok {
		return line
	}
	return "[Compass] Unknown"
}

// PlayerIcon returns the character drawn on the player's cell.
func PlayerIcon(d game.Direction) byte {
	if icon, ok := playerIcons[d]; ok {
		return icon
	}
	return '^'
}

// OutcomeMessage describes the result of cmd. The command disambiguates
// which way a TURNED outcome went.
func OutcomeMessage(cmd game.Command, kind game.MessageKind, d game.Direction) string {
	name := DirectionName(d)
	switch kind {
	case game.Welcome:
		return WelcomeText
	case game.Turned:
		if cmd == game.TurnLeft {
			return fmt.Sprintf("You turn left. Now facing %s.", name)
		}
		return fmt.Sprintf("You turn right. Now facing %s.", name)
	case game.Moved:
		return fmt.Sprintf("You move forward. Facing %s.", name)
	case game.Backed:
		return fmt.Sprintf("You step backward. Facing %s.", name)
	case game.BumpWall:
		return fmt.Sprintf("You bump into a wall. Still facing %s.", name)
	case game.BumpBoundary:
		return fmt.Sprintf("You bump into the boundary. Still facing %s.", name)
	case game.BackWall:
		return fmt.Sprintf("You step back into a wall. Still facing %s.", name)
	case game.BackBoundary:
		return fmt.Sprintf("You back into the boundary. Still facing %s.", name)
	}
	return ""
}
