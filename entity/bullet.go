package entity

import "github.com/lixenwraith/invaders/constants"

// Bullet is one pooled projectile. X, Y is the circle center. FromPlayer
// selects the faster gold player kind over the slower purple alien kind.
// Active doubles as the pool slot-occupied flag.
type Bullet struct {
	X, Y       float64
	FromPlayer bool
	Active     bool
}

// Radius returns the collision radius for the bullet's kind
func (b *Bullet) Radius() float64 {
	if b.FromPlayer {
		return constants.BulletRadiusPlayer
	}
	return constants.BulletRadiusAlien
}

// NewBulletPool creates the fixed-capacity bullet arena
func NewBulletPool() *Pool[Bullet] {
	return NewPool(constants.BulletPoolCap, func(b *Bullet) *bool { return &b.Active })
}
