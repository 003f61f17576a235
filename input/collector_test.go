package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCollectorFoldsKeyEvents(t *testing.T) {
	c := NewCollector()

	c.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	s := c.Frame()
	if !s.MoveLeft {
		t.Error("Expected MoveLeft from the left arrow")
	}
	if !s.Fire {
		t.Error("Expected Fire from the space key")
	}
	if s.MoveRight || s.Quit {
		t.Error("Expected untouched intents to stay false")
	}
}

func TestCollectorDrainsPerFrame(t *testing.T) {
	c := NewCollector()
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))

	if s := c.Frame(); !s.MoveRight {
		t.Fatal("Expected MoveRight in the first frame")
	}
	if s := c.Frame(); s.MoveRight {
		t.Error("Expected the second frame to start clean")
	}
}

func TestCollectorVimKeys(t *testing.T) {
	c := NewCollector()
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	c.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	s := c.Frame()
	if !s.MoveLeft || !s.Fire {
		t.Error("Expected 'a' to move left and Enter to fire")
	}
}

func TestCollectorQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	} {
		c := NewCollector()
		c.HandleEvent(ev)
		if !c.Frame().Quit {
			t.Errorf("Expected quit from %v", ev.Key())
		}
	}
}

func TestCollectorIgnoresUnboundKeys(t *testing.T) {
	c := NewCollector()
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	if s := c.Frame(); s != (State{}) {
		t.Errorf("Expected empty state for unbound key, got %+v", s)
	}
}
