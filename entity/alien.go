package entity

import "github.com/lixenwraith/invaders/constants"

// Alien is one pooled invader. X, Y is the top-left corner of its 8x8 box.
// Alive doubles as the pool slot-occupied flag.
type Alien struct {
	X, Y  float64
	Alive bool
}

// NewAlienPool creates the fixed-capacity alien arena
func NewAlienPool() *Pool[Alien] {
	return NewPool(constants.AlienPoolCap, func(a *Alien) *bool { return &a.Alive })
}
