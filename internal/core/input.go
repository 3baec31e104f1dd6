package core

// Intent is the per-tick discrete steering input consumed by the simulation.
// The platform maps physical keys to intents; the core never sees raw keys.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft        // A, Left arrow - steer left
	IntentRight       // D, Right arrow - steer right
	IntentDuck        // S, Down arrow - tuck (reserved, not load-bearing to physics)
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentDuck:
		return "Duck"
	default:
		return "Unknown"
	}
}

// Command is a control signal that drives run phase transitions.
// Unlike intents, commands are edge-triggered: one command per key press.
type Command int

const (
	CommandNone    Command = iota
	CommandStart           // Enter - begin a run from the menu
	CommandRestart         // R - start a fresh run after game over or victory
	CommandAbort           // Esc - abandon the run and return to the menu
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandStart:
		return "Start"
	case CommandRestart:
		return "Restart"
	case CommandAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}
