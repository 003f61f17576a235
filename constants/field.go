package constants

// Play field dimensions in world units. The field matches the camera-visible
// region of the original 960x540 layout at 4x zoom.
const (
	FieldWidth  = 240.0
	FieldHeight = 135.0
)

// FormationTop is the Y offset of the first formation row below the top bound
const FormationTop = 16.0

// PlayerBottomMargin is the gap between the player and the bottom bound
const PlayerBottomMargin = 12.0
