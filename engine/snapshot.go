package engine

import "github.com/lixenwraith/invaders/entity"

// AlienView is one live alien's position for rendering
type AlienView struct {
	X, Y float64
}

// BulletView is one active bullet's position and kind for rendering
type BulletView struct {
	X, Y       float64
	FromPlayer bool
}

// Snapshot is the read-only per-frame view consumed by the presentation
// layer. Building it copies the live entities out of the pools, so the
// renderer never aliases session state.
type Snapshot struct {
	Phase         Phase
	PlayerX       float64
	PlayerY       float64
	Lives         int
	Wave          int
	AnimFrame     int
	ShowStartText bool
	Aliens        []AlienView
	Bullets       []BulletView
}

// Snapshot captures the current session state for rendering
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.Phase,
		PlayerX:       s.Player.X,
		PlayerY:       s.Player.Y,
		Lives:         s.Player.Lives,
		Wave:          s.Wave,
		AnimFrame:     s.AnimFrame,
		ShowStartText: s.ShowStartText,
		Aliens:        make([]AlienView, 0, s.AlienCount),
	}
	s.Aliens.ForEach(func(a *entity.Alien) {
		snap.Aliens = append(snap.Aliens, AlienView{X: a.X, Y: a.Y})
	})
	s.Bullets.ForEach(func(b *entity.Bullet) {
		snap.Bullets = append(snap.Bullets, BulletView{X: b.X, Y: b.Y, FromPlayer: b.FromPlayer})
	})
	return snap
}
