// pkg/sprite/mask.go
package sprite

import (
	"image"
	"math"
	"math/bits"
)

// AlphaThreshold - пиксель считается непрозрачным, если alpha выше порога.
const AlphaThreshold = 127

// Mask - побитовая маска непрозрачных пикселей изображения.
type Mask struct {
	W, H  int
	words int
	bits  []uint64
}

// NewMask создаёт пустую маску.
func NewMask(w, h int) *Mask {
	words := (w + 63) / 64
	return &Mask{W: w, H: h, words: words, bits: make([]uint64, words*h)}
}

// MaskFromImage строит маску по альфа-каналу.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Set помечает пиксель как непрозрачный.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.words+x/64] |= 1 << uint(x%64)
}

// Get возвращает состояние пикселя.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<uint(x%64)) != 0
}

// Count - число непрозрачных пикселей.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap проверяет пересечение с other, сдвинутой на (dx, dy) относительно m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.W, dx+other.W), min(m.H, dy+other.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// MaskCollide - попиксельная проверка двух масок, расположенных в прямоугольниках ra и rb.
func MaskCollide(ma *Mask, ra Rect, mb *Mask, rb Rect) bool {
	if !ra.Overlaps(rb) {
		return false
	}
	dx := int(math.Round(rb.X)) - int(math.Round(ra.X))
	dy := int(math.Round(rb.Y)) - int(math.Round(ra.Y))
	return ma.Overlap(mb, dx, dy)
}
