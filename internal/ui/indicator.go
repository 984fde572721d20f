// internal/ui/indicator.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hyperlydian/internal/config"
)

// EventIndicator - пульсирующий круг, пока идет или ждет особое событие.
type EventIndicator struct {
	X, Y   float32
	Radius float32
}

func NewEventIndicator(x, y, radius float32) *EventIndicator {
	return &EventIndicator{X: x, Y: y, Radius: radius}
}

// Draw рисует индикатор и подпись. label пустой - событий нет, ничего не рисуется.
func (i *EventIndicator) Draw(screen *ebiten.Image, label string, gameTimeMs float64) {
	if label == "" {
		return
	}
	pulse := 1.0 + 0.2*math.Sin(gameTimeMs/150)
	r := i.Radius * float32(pulse)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, config.WarningColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)
	DrawText(screen, label, int(i.X-i.Radius)-TextWidth(label)-8, int(i.Y)+config.TextOffsetY, config.TextLightColor)
}
