package shell

import (
	"unicode"

	"github.com/beka-birhanu/grid-maze/game"
)

// Action classifies a key press.
type Action uint8

const (
	ActionCommand Action = iota // The key maps to a game command.
	ActionQuit
	ActionUnknown
)

var keyCommands = map[rune]game.Command{
	'w': game.StepForward,
	's': game.StepBackward,
	'a': game.TurnLeft,
	'd': game.TurnRight,
}

// ParseKey maps a key press to a command. Whitespace is filtered by the
// session before keys reach ParseKey. The command is only meaningful
// when the returned action is ActionCommand.
func ParseKey(r rune) (game.Command, Action) {
	r = unicode.ToLower(r)
	if r == 'q' {
		return 0, ActionQuit
	}

	if cmd, ok := keyCommands[r]; ok {
		return cmd, ActionCommand
	}
	return 0, ActionUnknown
}

// IsYes reports whether r answers the play-again prompt positively.
func IsYes(r rune) bool {
	return r == 'y' || r == 'Y'
}
