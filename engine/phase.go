package engine

// Phase is the session lifecycle as seen by hosts
type Phase int32

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}
