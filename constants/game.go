package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ReadyDelay is how long the ready phase lasts before play begins, seconds
	ReadyDelay = 3.0

	// WinDelay is how long the win recap is shown before the next wave, seconds
	WinDelay = 3.0

	// LoseDelay is how long the death recap is shown before respawn or reset, seconds
	LoseDelay = 3.0

	// StartBlinkInterval toggles the start-screen prompt text, seconds
	StartBlinkInterval = 0.5

	// AlienAnimInterval toggles the shared 2-frame alien animation, seconds
	AlienAnimInterval = 0.5
)
