package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the gameplay cues as short procedural tones. It
// implements engine.SoundSink; cues arriving before Initialize or while
// muted are dropped.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles cue playback without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// BulletFired plays a short high blip
func (sm *SoundManager) BulletFired() {
	sm.playTone(880, 40*time.Millisecond)
}

// AlienDied plays a mid-range pop
func (sm *SoundManager) AlienDied() {
	sm.playTone(440, 80*time.Millisecond)
}

// PlayerDied plays a long low drone
func (sm *SoundManager) PlayerDied() {
	sm.playTone(110, 350*time.Millisecond)
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}
