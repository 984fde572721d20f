// component/movement.go
package component

// Position - центр сущности в экранных координатах
type Position struct {
	X, Y float64
}

// Velocity - скорость в пикселях за кадр и направление по осям
type Velocity struct {
	Speed  float64
	DX, DY float64
}

// Step сдвигает позицию на один кадр.
func (v Velocity) Step(p *Position) {
	p.X += v.DX * v.Speed
	p.Y += v.DY * v.Speed
}
