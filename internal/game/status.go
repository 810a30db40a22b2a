package game

// Status is the controller's state machine position.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}
