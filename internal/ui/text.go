// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face - моноширинный шрифт интерфейса
var Face font.Face = basicfont.Face7x13

// TextWidth - ширина строки в пикселях
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// DrawText рисует строку; y - базовая линия.
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y, clr)
}

// DrawCenteredText рисует строку, выровненную по центру относительно cx.
func DrawCenteredText(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	text.Draw(screen, s, Face, cx-TextWidth(s)/2, y, clr)
}
