package engine

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/entity"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/vmath"
)

// FireChance returns the per-frame firing denominator for a wave: each live
// alien fires with probability 1/N. Higher waves fire faster, floored at
// 1/FireChanceFloor.
func FireChance(wave int) int {
	n := constants.FireChanceBase - (wave-1)*constants.FireChanceStep
	return vmath.ClampInt(n, constants.FireChanceFloor, constants.FireChanceBase)
}

func (s *Session) movePlayer(in input.State) {
	if in.MoveLeft {
		s.Player.X -= constants.PlayerSpeed
	}
	if in.MoveRight {
		s.Player.X += constants.PlayerSpeed
	}
	s.Player.X = vmath.Clamp(s.Player.X, 0, constants.FieldWidth-constants.PlayerWidth)
}

// firePlayer fires at most once per press edge, not once per held frame
func (s *Session) firePlayer(in input.State) {
	pressed := in.Fire && !s.firePrev
	s.firePrev = in.Fire
	if !pressed {
		return
	}
	b := s.Bullets.Alloc()
	b.X = s.Player.X + constants.PlayerWidth/2
	b.Y = s.Player.Y - constants.BulletRadiusPlayer
	b.FromPlayer = true
	s.sounds.BulletFired()
}

// sweepAliens moves the whole formation in lockstep using the pre-flip
// direction. Edge contact is noted during the pass and the reversal applied
// only after it, so every alien moves the same way within a frame.
func (s *Session) sweepAliens() {
	dx := constants.AlienSweepSpeed
	if s.SweepLeft {
		dx = -dx
	}
	hitLeft, hitRight := false, false
	s.Aliens.ForEach(func(a *entity.Alien) {
		a.X += dx
		if a.X <= 0 {
			hitLeft = true
		}
		if a.X >= constants.FieldWidth-constants.AlienWidth {
			hitRight = true
		}
	})
	if hitLeft {
		s.SweepLeft = false
	}
	if hitRight {
		s.SweepLeft = true
	}
}

// alienFire rolls one bounded random draw per live alien per frame
func (s *Session) alienFire() {
	chance := FireChance(s.Wave)
	s.Aliens.ForEach(func(a *entity.Alien) {
		if s.rng.Intn(chance) != 0 {
			return
		}
		b := s.Bullets.Alloc()
		b.X = a.X + constants.AlienWidth/2
		b.Y = a.Y + constants.AlienHeight
		b.FromPlayer = false
	})
}

// moveBullets advances both bullet kinds and expires them once fully off
// the field, the same rule in both directions.
func (s *Session) moveBullets() {
	s.Bullets.ForEach(func(b *entity.Bullet) {
		if b.FromPlayer {
			b.Y -= constants.BulletSpeedPlayer
			if b.Y < -b.Radius() {
				b.Active = false
			}
		} else {
			b.Y += constants.BulletSpeedAlien
			if b.Y > constants.FieldHeight+b.Radius() {
				b.Active = false
			}
		}
	})
}
