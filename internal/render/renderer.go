// internal/render/renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/entity"
)

// SpriteRenderer рисует сущности мира в порядке слоев.
// Кадры из assets.Manager переводятся в ebiten.Image один раз и кэшируются.
type SpriteRenderer struct {
	images map[*assets.Frame]*ebiten.Image
}

func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{images: make(map[*assets.Frame]*ebiten.Image)}
}

// Draw очищает экран и рисует items. Ожидается, что items уже отсортированы по слою.
func (r *SpriteRenderer) Draw(screen *ebiten.Image, items []entity.RenderItem) {
	screen.Fill(config.BackgroundColor)
	for _, it := range items {
		if it.Frame == nil || it.Alpha == 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(it.Rect.X, it.Rect.Y)
		if it.Alpha < 255 {
			op.ColorScale.ScaleAlpha(float32(it.Alpha) / 255)
		}
		screen.DrawImage(r.image(it.Frame), op)
	}
}

func (r *SpriteRenderer) image(f *assets.Frame) *ebiten.Image {
	if img, ok := r.images[f]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(f.Image)
	r.images[f] = img
	return img
}

// Cleanup освобождает видеопамять. Вызывается при выходе из игрового состояния.
func (r *SpriteRenderer) Cleanup() {
	for _, img := range r.images {
		img.Deallocate()
	}
	r.images = make(map[*assets.Frame]*ebiten.Image)
}
