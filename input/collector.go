package input

import "github.com/gdamore/tcell/v2"

// Collector folds terminal key events into a per-frame State. Terminals
// deliver key-down events only, so "held" movement relies on key autorepeat:
// every event marks its intent for the frame being assembled, and Frame
// drains the accumulated state.
type Collector struct {
	pending State
}

func NewCollector() *Collector {
	return &Collector{}
}

// HandleEvent folds one terminal event into the pending frame state
func (c *Collector) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyLeft:
		c.pending.MoveLeft = true
	case tcell.KeyRight:
		c.pending.MoveRight = true
	case tcell.KeyEnter:
		c.pending.Fire = true
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		c.pending.Quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'a', 'A':
			c.pending.MoveLeft = true
		case 'd', 'D':
			c.pending.MoveRight = true
		case ' ':
			c.pending.Fire = true
		case 'q', 'Q':
			c.pending.Quit = true
		}
	}
}

// Frame returns the accumulated state and resets for the next frame
func (c *Collector) Frame() State {
	s := c.pending
	c.pending = State{}
	return s
}
