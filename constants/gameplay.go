package constants

// Wave formation geometry. Each wave is a centered grid of FormationCols
// columns; rows grow with the wave number up to FormationMaxRows.
const (
	FormationCols    = 15
	FormationColMin  = -7
	FormationColMax  = 7
	FormationMaxRows = 5

	// FormationSpacing is the grid pitch as a multiple of the alien box size
	FormationSpacing = 1.5
)

// Alien firing odds. Each live alien fires with probability 1/N per frame,
// where N = FireChanceBase - (wave-1)*FireChanceStep, floored at
// FireChanceFloor.
const (
	FireChanceBase  = 300
	FireChanceStep  = 10
	FireChanceFloor = 120
)
