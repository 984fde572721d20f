// pkg/sprite/transform.go
package sprite

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Transform поворачивает src на degrees против часовой стрелки (как на экране) и масштабирует.
// Размер результата расширяется так, чтобы повернутое изображение поместилось целиком.
func Transform(src image.Image, degrees, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())

	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	// Убираем шум вида 6e-17 на кратных 90 градусах.
	cos, sin = snap(cos), snap(sin)

	dw := int(math.Ceil((math.Abs(sw*cos) + math.Abs(sh*sin)) * scale))
	dh := int(math.Ceil((math.Abs(sw*sin) + math.Abs(sh*cos)) * scale))
	dw, dh = max(dw, 1), max(dh, 1)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))

	scx := float64(sb.Min.X) + sw/2
	scy := float64(sb.Min.Y) + sh/2
	dcx, dcy := float64(dw)/2, float64(dh)/2

	a, b := cos*scale, sin*scale
	d, e := -sin*scale, cos*scale
	s2d := f64.Aff3{
		a, b, dcx - (a*scx + b*scy),
		d, e, dcy - (d*scx + e*scy),
	}
	draw.BiLinear.Transform(dst, s2d, src, sb, draw.Over, nil)
	return dst
}

func snap(v float64) float64 {
	for _, t := range []float64{-1, 0, 1} {
		if math.Abs(v-t) < 1e-12 {
			return t
		}
	}
	return v
}
