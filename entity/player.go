package entity

// Player is the single player ship. X, Y is the top-left corner of its
// 8x8 box. Alive is kept for pool symmetry but never drives logic; the
// session's lives counter does.
type Player struct {
	X, Y  float64
	Lives int
	Alive bool
}
