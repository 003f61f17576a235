package engine

// SoundSink receives fire-and-forget gameplay cues. Implementations must not
// block the frame; delivery failures are the presentation layer's concern.
type SoundSink interface {
	BulletFired()
	AlienDied()
	PlayerDied()
}

// NopSound discards all cues
type NopSound struct{}

func (NopSound) BulletFired() {}
func (NopSound) AlienDied()   {}
func (NopSound) PlayerDied()  {}
