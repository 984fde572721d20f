// component/render.go
package component

// Renderable - что и как рисовать для сущности
type Renderable struct {
	Key      string  // ключ изображения в assets.Manager
	Layer    int     // слой отрисовки, меньшие рисуются раньше
	Scale    float64 // масштаб исходного изображения
	Rotation float64 // градусы, [0, 360)
	Alpha    uint8
}
