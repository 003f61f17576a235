package engine

// Phase identifies the session lifecycle state. The session cycles
// indefinitely; there is no terminal phase.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseReady
	PhasePlay
	PhaseWin
	PhaseLose
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseReady:
		return "ready"
	case PhasePlay:
		return "play"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}
