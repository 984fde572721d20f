// internal/utils/math.go
package utils

import (
	"math"

	"hyperlydian/pkg/sprite"
)

// Point - точка на экране
type Point struct {
	X, Y float64
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeDegrees приводит угол к диапазону [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Heading - единичный вектор движения для угла в градусах.
// Y инвертирован: 90 градусов - это движение вверх по экрану.
func Heading(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad), -math.Sin(rad)
}

// RotateOffset поворачивает смещение (dx, dy) стандартной матрицей поворота
func RotateOffset(dx, dy, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return dx*cos - dy*sin, dx*sin + dy*cos
}

// MuzzlePoint - мировая точка ствола: смещение поворачивается вместе с кораблём,
// ось X зеркалится под экранные координаты.
func MuzzlePoint(ox, oy, dx, dy, deg float64) (float64, float64) {
	rx, ry := RotateOffset(dx, dy, deg)
	return ox - rx, oy + ry
}

// Distance - евклидово расстояние
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// InterpolateValues возвращает n равноотстоящих значений от start до end включительно
func InterpolateValues(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = Lerp(start, end, float64(i)/float64(n-1))
	}
	return out
}

// InterpolatePoints возвращает n равноотстоящих точек отрезка
func InterpolatePoints(from, to Point, n int) []Point {
	xs := InterpolateValues(from.X, to.X, n)
	ys := InterpolateValues(from.Y, to.Y, n)
	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out
}

// Отступы радиусов эллипса формации от краёв экрана
const (
	OvalMarginX = 350
	OvalMarginY = 50
)

// OvalStartingPositions равномерно расставляет n точек по эллипсу с центром в центре экрана.
// Горизонтальный и вертикальный радиусы различаются.
func OvalStartingPositions(n int, screen sprite.Rect) []Point {
	if n <= 0 {
		return nil
	}
	cx, cy := screen.Center()
	rx, ry := cx-OvalMarginX, cy-OvalMarginY
	step := 2 * math.Pi / float64(n)
	out := make([]Point, n)
	for i := range out {
		a := float64(i) * step
		out[i] = Point{X: rx*math.Cos(a) + cx, Y: ry*math.Sin(a) + cy}
	}
	return out
}

// RotationAnglesFromStartPositions - угол, при котором спрайт в точке смотрит в центр экрана
func RotationAnglesFromStartPositions(points []Point, screen sprite.Rect) []float64 {
	cx, cy := screen.Center()
	out := make([]float64, len(points))
	for i, p := range points {
		toCenter := math.Atan2(cy-p.Y, p.X-cx)
		out[i] = toCenter*180/math.Pi + 180
	}
	return out
}
