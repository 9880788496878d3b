package snake

// State is the play state of the controller.
type State int32

const (
	StateNotStarted State = iota // Before the first tap
	StateRunning
	StatePaused
	StateDead      // Waiting for a tap to restart
	StateBoardFull // No room left for the apple; waiting for a tap to restart
)

// AwaitingStart reports whether a tap should start a new game.
func (s State) AwaitingStart() bool {
	return s == StateNotStarted || s == StateDead || s == StateBoardFull
}

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	case StateBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}
