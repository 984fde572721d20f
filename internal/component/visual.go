// internal/component/visual.go
package component

import "hyperlydian/internal/defs"

// Animation - покадровая анимация состояния изображения (вспышка урона, лечения).
// Frame растет на Increment каждый кадр; по достижении Frames неповторяющаяся
// анимация возвращает изображение в состояние по умолчанию.
type Animation struct {
	State     defs.ImageState
	Frame     float64
	Increment float64
	Frames    int
	Loop      bool
}

// Start запускает анимацию с первого кадра.
func (a *Animation) Start(state defs.ImageState, frames int, loop bool) {
	a.State = state
	a.Frame = 0
	a.Frames = frames
	a.Loop = loop
}

// Active - идет ли сейчас анимация
func (a *Animation) Active() bool {
	return a.State != defs.ImageDefault
}

// Advance продвигает анимацию на один кадр.
// Возвращает true, если анимация только что завершилась.
func (a *Animation) Advance() bool {
	if !a.Active() {
		return false
	}
	a.Frame += a.Increment
	if int(a.Frame) < a.Frames {
		return false
	}
	a.Frame = 0
	if a.Loop {
		return false
	}
	a.State = defs.ImageDefault
	a.Frames = 0
	return true
}

// AlphaFlash перебирает значения прозрачности по кругу.
// Каждый полный оборот увеличивает Iteration.
type AlphaFlash struct {
	Values    []uint8
	Pos       float64
	Iteration int
}

// Advance сдвигает позицию на increment и возвращает текущую прозрачность.
func (f *AlphaFlash) Advance(increment float64) uint8 {
	if len(f.Values) == 0 {
		return 255
	}
	n := float64(len(f.Values))
	f.Pos += increment
	for f.Pos >= n {
		f.Pos -= n
		f.Iteration++
	}
	return f.Values[int(f.Pos)]
}
