package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/engine"
)

var (
	stylePlayer       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleAlien        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayerBullet = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleAlienBullet  = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleHUD          = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBanner       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Alien sprite runes for the shared 2-frame animation
var alienFrames = [2]rune{'W', 'M'}

// Renderer projects the world-unit field onto terminal cells. The bottom
// row is reserved for the HUD; everything above scales to the field.
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewRenderer creates a renderer for the given screen dimensions
func NewRenderer(screen tcell.Screen, width, height int) *Renderer {
	return &Renderer{screen: screen, width: width, height: height}
}

// Resize updates the projection after a terminal resize
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Draw renders one frame from a session snapshot
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()

	switch snap.Phase {
	case engine.PhaseStart:
		r.drawPlayer(snap)
		if snap.ShowStartText {
			r.drawCentered(2, styleBanner, "Press SPACE To Start!")
		}
	case engine.PhaseReady:
		r.drawPlayer(snap)
		r.drawCentered(2, styleBanner, fmt.Sprintf("Ready Wave %d!", snap.Wave))
		r.drawHUD(snap)
	case engine.PhasePlay:
		r.drawPlayer(snap)
		r.drawAliens(snap)
		r.drawBullets(snap)
		r.drawHUD(snap)
	case engine.PhaseWin:
		r.drawPlayer(snap)
		r.drawCentered(2, styleBanner, "Wave Cleared!")
		r.drawHUD(snap)
	case engine.PhaseLose:
		r.drawAliens(snap)
		r.drawBullets(snap)
		r.drawCentered(2, styleBanner, "You Died!")
		r.drawHUD(snap)
	}

	r.screen.Show()
}

// cell maps world coordinates to a terminal cell inside the field area
func (r *Renderer) cell(x, y float64) (int, int) {
	fieldRows := r.height - 1
	cx := int(x * float64(r.width) / constants.FieldWidth)
	cy := int(y * float64(fieldRows) / constants.FieldHeight)
	if cx < 0 {
		cx = 0
	}
	if cx >= r.width {
		cx = r.width - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= fieldRows {
		cy = fieldRows - 1
	}
	return cx, cy
}

func (r *Renderer) drawPlayer(snap engine.Snapshot) {
	cx, cy := r.cell(snap.PlayerX+constants.PlayerWidth/2, snap.PlayerY+constants.PlayerHeight/2)
	r.screen.SetContent(cx, cy, 'A', nil, stylePlayer)
}

func (r *Renderer) drawAliens(snap engine.Snapshot) {
	sprite := alienFrames[snap.AnimFrame&1]
	for _, a := range snap.Aliens {
		cx, cy := r.cell(a.X+constants.AlienWidth/2, a.Y+constants.AlienHeight/2)
		r.screen.SetContent(cx, cy, sprite, nil, styleAlien)
	}
}

func (r *Renderer) drawBullets(snap engine.Snapshot) {
	for _, b := range snap.Bullets {
		cx, cy := r.cell(b.X, b.Y)
		if b.FromPlayer {
			r.screen.SetContent(cx, cy, '|', nil, stylePlayerBullet)
		} else {
			r.screen.SetContent(cx, cy, '!', nil, styleAlienBullet)
		}
	}
}

func (r *Renderer) drawHUD(snap engine.Snapshot) {
	row := r.height - 1
	r.drawText(1, row, styleHUD, fmt.Sprintf("Lives: %d", snap.Lives))
	wave := fmt.Sprintf("Wave: %d", snap.Wave)
	r.drawText(r.width-len(wave)-1, row, styleHUD, wave)
}

func (r *Renderer) drawCentered(row int, style tcell.Style, text string) {
	r.drawText((r.width-len(text))/2, row, style, text)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
