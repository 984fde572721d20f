// internal/ui/menu_button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hyperlydian/internal/config"
)

// MenuButton - кнопка меню. Если Toggle не nil, кнопка переключает флаг
// и показывает его состояние рядом с текстом.
type MenuButton struct {
	Rect   image.Rectangle
	Text   string
	Toggle *bool
}

func NewMenuButton(rect image.Rectangle, text string, toggle *bool) *MenuButton {
	return &MenuButton{Rect: rect, Text: text, Toggle: toggle}
}

// Label - текст кнопки с состоянием переключателя
func (b *MenuButton) Label() string {
	if b.Toggle == nil {
		return b.Text
	}
	if *b.Toggle {
		return b.Text + ": On"
	}
	return b.Text + ": Off"
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *MenuButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. Выбранная кнопка подсвечивается.
func (b *MenuButton) Draw(screen *ebiten.Image, selected bool) {
	r := b.Rect
	bg := config.MenuButtonColor
	if selected {
		bg = config.MenuButtonHover
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)

	cx := r.Min.X + r.Dx()/2
	cy := r.Min.Y + r.Dy()/2 + config.TextOffsetY
	DrawCenteredText(screen, b.Label(), cx, cy, config.TextLightColor)
}
