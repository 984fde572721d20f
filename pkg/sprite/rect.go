// pkg/sprite/rect.go
package sprite

import "math"

// Rect - прямоугольник в экранных координатах (Y вниз), X/Y - левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// RectAt строит прямоугольник w*h с центром в (cx, cy).
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps - строгое пересечение: касание краями не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains - o целиком внутри r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Outside - прямоугольник целиком за пределами bounds.
func (r Rect) Outside(bounds Rect) bool {
	return r.X > bounds.Right() || r.Right() < bounds.X || r.Y > bounds.Bottom() || r.Bottom() < bounds.Y
}

// Inflate расширяет прямоугольник на d с каждой стороны.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// CircleRatioCollide - проверка пересечения описанных окружностей, уменьшенных в ratio раз.
func CircleRatioCollide(a, b Rect, ratio float64) bool {
	ra := ratio * 0.5 * math.Hypot(a.W, a.H)
	rb := ratio * 0.5 * math.Hypot(b.W, b.H)
	ax, ay := a.Center()
	bx, by := b.Center()
	dx, dy := ax-bx, ay-by
	return dx*dx+dy*dy <= (ra+rb)*(ra+rb)
}
