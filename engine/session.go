package engine

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/entity"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/vmath"
)

// Session holds one complete game: player, entity pools, wave and lives
// bookkeeping, phase timers and the phase itself. It has exactly one owner,
// the frame loop, and is never touched concurrently: Update runs to
// completion within a frame, Snapshot is a pure read afterwards.
type Session struct {
	Phase Phase

	Player  entity.Player
	Aliens  *entity.Pool[entity.Alien]
	Bullets *entity.Pool[entity.Bullet]

	// Wave increases by one on each cleared wave and resets to 1 on a full
	// loss. AlienCount mirrors the number of live aliens and drives the win
	// check. SweepLeft is the shared formation direction.
	Wave       int
	AlienCount int
	SweepLeft  bool

	// Per-phase elapsed-time accumulators, seconds
	startElapsed float64
	readyElapsed float64
	winElapsed   float64
	loseElapsed  float64

	// Shared alien animation: a 2-frame toggle on a wall-clock threshold,
	// ticked in play and lose so aliens keep animating during the recap
	animElapsed float64
	AnimFrame   int

	// Start-screen prompt blink
	ShowStartText bool

	firePrev bool

	rng    *vmath.FastRand
	sounds SoundSink
}

// NewSession creates a session in the start phase. The seed fixes the alien
// firing decisions; a nil sink mutes all cues.
func NewSession(seed uint64, sounds SoundSink) *Session {
	if sounds == nil {
		sounds = NopSound{}
	}
	s := &Session{
		Phase:         PhaseStart,
		Aliens:        entity.NewAlienPool(),
		Bullets:       entity.NewBulletPool(),
		Wave:          1,
		ShowStartText: true,
		rng:           vmath.NewFastRand(seed),
		sounds:        sounds,
	}
	s.Player.Lives = constants.StartLives
	s.Player.Alive = true
	s.respawnPlayer()
	return s
}

// Update advances the session by one frame. dt is real elapsed seconds
// since the previous frame and scales the phase timers only; movement is
// per-frame like the original.
func (s *Session) Update(dt float64, in input.State) {
	switch s.Phase {
	case PhaseStart:
		s.updateStart(dt, in)
	case PhaseReady:
		s.updateReady(dt)
	case PhasePlay:
		s.updatePlay(dt, in)
	case PhaseWin:
		s.updateWin(dt)
	case PhaseLose:
		s.updateLose(dt)
	}
}

func (s *Session) updateStart(dt float64, in input.State) {
	if in.Fire {
		s.startToReady()
		return
	}
	s.startElapsed += dt
	if s.startElapsed > constants.StartBlinkInterval {
		s.startElapsed = 0
		s.ShowStartText = !s.ShowStartText
	}
}

func (s *Session) updateReady(dt float64) {
	s.readyElapsed += dt
	if s.readyElapsed > constants.ReadyDelay {
		s.readyToPlay()
	}
}

func (s *Session) updatePlay(dt float64, in input.State) {
	s.tickAnimation(dt)
	s.movePlayer(in)
	s.firePlayer(in)
	s.sweepAliens()
	s.alienFire()
	s.moveBullets()
	s.resolveCollisions()
}

func (s *Session) updateWin(dt float64) {
	s.winElapsed += dt
	if s.winElapsed > constants.WinDelay {
		s.winToReady()
	}
}

func (s *Session) updateLose(dt float64) {
	s.tickAnimation(dt)
	s.loseElapsed += dt
	if s.loseElapsed > constants.LoseDelay {
		if s.Player.Lives > 1 {
			s.loseToReady()
		} else {
			s.loseToStart()
		}
	}
}

func (s *Session) tickAnimation(dt float64) {
	s.animElapsed += dt
	if s.animElapsed > constants.AlienAnimInterval {
		s.animElapsed = 0
		s.AnimFrame = 1 - s.AnimFrame
	}
}

func (s *Session) respawnPlayer() {
	s.Player.X = (constants.FieldWidth - constants.PlayerWidth) / 2
	s.Player.Y = constants.FieldHeight - constants.PlayerHeight - constants.PlayerBottomMargin
}

// ===== Phase transitions =====
// These are the only mutators of Phase. Each validates the source phase so
// a stray call cannot corrupt the lifecycle.

func (s *Session) startToReady() {
	if s.Phase != PhaseStart {
		return
	}
	s.Phase = PhaseReady
	s.startElapsed = 0
	s.ShowStartText = true
}

func (s *Session) readyToPlay() {
	if s.Phase != PhaseReady {
		return
	}
	s.Phase = PhasePlay
	s.readyElapsed = 0
	s.spawnWave()
}

func (s *Session) playToWin() {
	if s.Phase != PhasePlay {
		return
	}
	s.Phase = PhaseWin
	s.Bullets.ReleaseAll()
}

func (s *Session) playToLose() {
	if s.Phase != PhasePlay {
		return
	}
	s.Phase = PhaseLose
	s.Bullets.ReleaseAll()
}

func (s *Session) winToReady() {
	if s.Phase != PhaseWin {
		return
	}
	s.Phase = PhaseReady
	s.winElapsed = 0
	s.respawnPlayer()
	s.Wave++
}

func (s *Session) loseToReady() {
	if s.Phase != PhaseLose {
		return
	}
	s.Phase = PhaseReady
	s.loseElapsed = 0
	s.respawnPlayer()
	s.Aliens.ReleaseAll()
	s.AlienCount = 0
	s.Player.Lives--
}

func (s *Session) loseToStart() {
	if s.Phase != PhaseLose {
		return
	}
	s.Phase = PhaseStart
	s.loseElapsed = 0
	s.respawnPlayer()
	s.Aliens.ReleaseAll()
	s.AlienCount = 0
	s.Player.Lives = constants.StartLives
	s.Wave = 1
}
