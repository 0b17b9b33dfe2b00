package input

// Action is the host-level meaning of a key press
type Action uint8

const (
	ActionNone Action = iota

	// Game intents
	ActionLeft  // Move left while held, cycle difficulty left on press
	ActionRight // Move right while held, cycle difficulty right on press
	ActionFire
	ActionConfirm

	// Host controls, never reach the engine
	ActionPause
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionFire:    "fire",
	ActionConfirm: "confirm",
	ActionPause:   "pause",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}
