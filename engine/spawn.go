package engine

import (
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/vmath"
)

// WaveRows returns the formation row count for a wave: one row at wave 1,
// one more every third wave, capped at FormationMaxRows.
func WaveRows(wave int) int {
	return vmath.ClampInt(wave/3+1, 1, constants.FormationMaxRows)
}

// spawnWave populates the alien grid for the current wave: WaveRows rows of
// FormationCols columns centered on the field, spaced at 1.5 box sizes,
// offset below the top bound. Resets the alive count and sweep direction.
func (s *Session) spawnWave() {
	rows := WaveRows(s.Wave)
	// Formation must never exceed pool capacity (round-robin allocation
	// would silently overwrite earlier rows)
	if rows*constants.FormationCols > s.Aliens.Cap() {
		rows = s.Aliens.Cap() / constants.FormationCols
	}

	centerX := (constants.FieldWidth - constants.AlienWidth) / 2
	for row := 0; row < rows; row++ {
		for col := constants.FormationColMin; col <= constants.FormationColMax; col++ {
			a := s.Aliens.Alloc()
			a.X = centerX + float64(col)*constants.FormationSpacing*constants.AlienWidth
			a.Y = constants.FormationTop + float64(row)*constants.FormationSpacing*constants.AlienHeight
		}
	}

	s.AlienCount = rows * constants.FormationCols
	s.SweepLeft = false
}
