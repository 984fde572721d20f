// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hyperlydian/internal/config"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует maxHealth ячеек, из них health заполнены.
// При здоровье не больше трети ячейки краснеют.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	fill := config.HealthColor
	if health*3 <= maxHealth {
		fill = config.WarningColor
	}

	for j := 0; j < maxHealth; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius

		var c color.RGBA
		if j < health {
			c = fill
		} else {
			c = config.HealthBarEmpty
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, config.HealthBarStroke, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	DrawText(screen, label, int(i.X), int(i.Y)-config.TextOffsetY*2, config.TextLightColor)
}

// Height - общая высота индикатора для maxHealth ячеек
func (i *PlayerHealthIndicator) Height(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return float32(rows) * (HealthCircleRadius*2 + HealthCircleSpacing)
}
