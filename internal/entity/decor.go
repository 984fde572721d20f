// internal/entity/decor.go
package entity

import (
	"fmt"

	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
)

// Фон: ноты и нотные станы падают сверху вниз
const (
	DecorFallSpeed    = 2
	NoteVariants      = 6
	NotesPerEvent     = 2
	NotesOnLoad       = 60
	NoteMinScale      = 0.4
	NoteMaxScale      = 1.6
	StaffSpawnOffsetY = 40
)

// Decor - фоновая нота или нотный стан.
type Decor struct {
	Base
	Vel component.Velocity
}

// NewNote создает ноту над экраном или, при onLoad, в случайной точке экрана.
func NewNote(w *World, onLoad bool) *Decor {
	variant := w.Rng.Intn(NoteVariants)
	x := float64(w.Rng.IntRange(0, int(w.Screen.W)))
	y := float64(w.Rng.IntRange(-100, -20))
	if onLoad {
		x = float64(w.Rng.IntRange(1, int(w.Screen.W)-1))
		y = float64(w.Rng.IntRange(1, int(w.Screen.H)-1))
	}
	d := &Decor{
		Base: newBase(w, KindDecor, fmt.Sprintf("background/note/%d", variant), config.LayerDecor,
			w.Rng.Uniform(NoteMinScale, NoteMaxScale), float64(w.Rng.IntRange(0, 359)), x, y),
	}
	d.Render.Alpha = uint8(w.Rng.IntRange(10, 255))
	d.Vel = component.Velocity{Speed: DecorFallSpeed, DY: 1}
	w.Register(d)
	return d
}

// NewStaff создает нотный стан над экраном.
func NewStaff(w *World) *Decor {
	x := float64(w.Rng.IntRange(0, int(w.Screen.W)))
	d := &Decor{
		Base: newBase(w, KindDecor, "background/staff", config.LayerBackground, 1, 0, x, -StaffSpawnOffsetY),
	}
	d.Render.Alpha = 120
	d.Vel = component.Velocity{Speed: DecorFallSpeed, DY: 1}
	w.Register(d)
	return d
}

// Update опускает декор и убирает его, когда он целиком ушел под экран.
func (d *Decor) Update(_ *UpdateContext) {
	d.Vel.Step(&d.Pos)
	if d.Bounds().Top() > d.world.Screen.Bottom() {
		d.Kill()
	}
}
