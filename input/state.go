package input

// State is the per-frame input snapshot consumed by the session. MoveLeft
// and MoveRight are held-style signals; Fire is a level signal from which
// the session derives its own press edge.
type State struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Quit      bool
}
