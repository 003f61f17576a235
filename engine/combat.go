package engine

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/vmath"
)

// resolveCollisions scans active bullets in index order, after movement.
// A win or lose transition aborts the scan: bullets later in the pool are
// not processed that frame. That matches the session's historical behavior
// and is relied on by the transition side effects (the pools are already
// cleared when the next phase sees them).
func (s *Session) resolveCollisions() {
	for i := 0; i < s.Bullets.Cap(); i++ {
		b := s.Bullets.At(i)
		if !b.Active {
			continue
		}
		var transitioned bool
		if b.FromPlayer {
			transitioned = s.resolvePlayerBullet(i)
		} else {
			transitioned = s.resolveAlienBullet(i)
		}
		if transitioned {
			return
		}
	}
}

// resolvePlayerBullet tests one player bullet against every live alien in
// index order, first match wins. Reports whether the kill emptied the wave
// and moved the session to the win phase.
func (s *Session) resolvePlayerBullet(i int) bool {
	b := s.Bullets.At(i)
	for j := 0; j < s.Aliens.Cap(); j++ {
		a := s.Aliens.At(j)
		if !a.Alive {
			continue
		}
		hit := vmath.CirclesOverlap(
			b.X, b.Y, b.Radius(),
			a.X+constants.AlienWidth/2, a.Y+constants.AlienHeight/2, constants.AlienWidth/2,
		)
		if !hit {
			continue
		}
		b.Active = false
		a.Alive = false
		s.AlienCount--
		s.sounds.AlienDied()
		if s.AlienCount <= 0 {
			s.playToWin()
			return true
		}
		return false
	}
	return false
}

// resolveAlienBullet tests one alien bullet against the player. A hit ends
// the round: the session moves to the lose phase.
func (s *Session) resolveAlienBullet(i int) bool {
	b := s.Bullets.At(i)
	hit := vmath.CirclesOverlap(
		b.X, b.Y, b.Radius(),
		s.Player.X+constants.PlayerWidth/2, s.Player.Y+constants.PlayerHeight/2, constants.PlayerWidth/2,
	)
	if !hit {
		return false
	}
	s.sounds.PlayerDied()
	s.playToLose()
	return true
}
