// internal/ui/pause_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hyperlydian/internal/config"
)

// PauseOverlay затемняет кадр и рисует знак паузы с подсказками.
type PauseOverlay struct {
	Size float32
}

func NewPauseOverlay(size float32) *PauseOverlay {
	return &PauseOverlay{Size: size}
}

func (o *PauseOverlay) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)

	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	width := o.Size * 0.6
	height := o.Size * 2
	spacing := o.Size * 0.4
	// Две вертикальные полосы
	vector.DrawFilledRect(screen, cx-width-spacing/2, cy-height/2, width, height, config.TextLightColor, true)
	vector.DrawFilledRect(screen, cx+spacing/2, cy-height/2, width, height, config.TextLightColor, true)

	y := int(cy + height)
	DrawCenteredText(screen, "PAUSED", int(cx), y, config.TextLightColor)
	DrawCenteredText(screen, "Esc/P - resume, Q - quit to menu", int(cx), y+20, config.TextDimColor)
}
