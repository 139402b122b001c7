package game

// Command is a relative movement request issued by the player.
type Command uint8

const (
	TurnLeft Command = iota
	TurnRight
	StepForward
	StepBackward
)

func (c Command) String() string {
	switch c {
	case TurnLeft:
		return "TURN_LEFT"
	case TurnRight:
		return "TURN_RIGHT"
	case StepForward:
		return "STEP_FORWARD"
	case StepBackward:
		return "STEP_BACKWARD"
	}
	return "UNKNOWN"
}

// MessageKind describes the result of the last command. Renderers map kinds
// to text.
type MessageKind uint8

const (
	// Welcome is reported before any command has been applied.
	Welcome MessageKind = iota
	Turned
	Moved
	Backed
	BumpWall
	BumpBoundary
	BackWall
	BackBoundary
)

// IsBump reports whether the kind describes a blocked step.
func (k MessageKind) IsBump() bool {
	switch k {
	case BumpWall, BumpBoundary, BackWall, BackBoundary:
		return true
	}
	return false
}

func (k MessageKind) String() string {
	switch k {
	case Welcome:
		return "WELCOME"
	case Turned:
		return "TURNED"
	case Moved:
		return "MOVED"
	case Backed:
		return "BACKED"
	case BumpWall:
		return "BUMP_WALL"
	case BumpBoundary:
		return "BUMP_BOUNDARY"
	case BackWall:
		return "BACK_WALL"
	case BackBoundary:
		return "BACK_BOUNDARY"
	}
	return "UNKNOWN"
}

// Outcome is what applying a command to a player produced.
type Outcome struct {
	Player Player      // Player after the command.
	Kind   MessageKind // What happened.
	Won    bool        // Set by the level controller when Player stands on the exit.
}
