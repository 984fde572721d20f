// internal/entity/base.go
package entity

import (
	"log"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/component"
	"hyperlydian/internal/types"
	"hyperlydian/internal/utils"
	"hyperlydian/pkg/sprite"
)

// Kind - категория сущности
type Kind int

const (
	KindPlayer Kind = iota
	KindStrafer
	KindSpinner
	KindProjectile
	KindUpgrade
	KindHazard
	KindIndicator
	KindDecor
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindStrafer:
		return "strafer_grunt"
	case KindSpinner:
		return "spinner_grunt"
	case KindProjectile:
		return "projectile"
	case KindUpgrade:
		return "upgrade"
	case KindHazard:
		return "hazard"
	case KindIndicator:
		return "indicator"
	case KindDecor:
		return "decor"
	}
	return "unknown"
}

// UpdateContext - данные кадра, которые получают сущности.
type UpdateContext struct {
	Delta float64 // секунды с прошлого кадра
}

// Entity - общий контракт всех игровых сущностей.
type Entity interface {
	ID() types.EntityID
	Kind() Kind
	Alive() bool
	Position() (x, y float64)
	Bounds() sprite.Rect
	Mask() *sprite.Mask
	Frame() *assets.Frame
	Layer() int
	Alpha() uint8
	SpecialEvent() bool
	Update(ctx *UpdateContext)
	Kill()
	base() *Base
}

// Base - общее состояние сущности: позиция, изображение, членство в группах.
type Base struct {
	id      types.EntityID
	kind    Kind
	world   *World
	alive   bool
	groups  []*Group
	special bool

	Pos    component.Position
	Render component.Renderable
	frame  *assets.Frame
}

func newBase(w *World, kind Kind, key string, layer int, scale, rotation, x, y float64) Base {
	return Base{
		id:    w.NewEntity(),
		kind:  kind,
		world: w,
		alive: true,
		Pos:   component.Position{X: x, Y: y},
		Render: component.Renderable{
			Key:      key,
			Layer:    layer,
			Scale:    scale,
			Rotation: utils.NormalizeDegrees(rotation),
			Alpha:    255,
		},
	}
}

func (b *Base) base() *Base                  { return b }
func (b *Base) ID() types.EntityID           { return b.id }
func (b *Base) Kind() Kind                   { return b.kind }
func (b *Base) Alive() bool                  { return b.alive }
func (b *Base) SpecialEvent() bool           { return b.special }
func (b *Base) Layer() int                   { return b.Render.Layer }
func (b *Base) Alpha() uint8                 { return b.Render.Alpha }
func (b *Base) Rotation() float64            { return b.Render.Rotation }
func (b *Base) Position() (float64, float64) { return b.Pos.X, b.Pos.Y }

// Frame возвращает текущий кадр изображения с учетом поворота и масштаба.
func (b *Base) Frame() *assets.Frame {
	if b.frame == nil {
		b.refresh()
	}
	return b.frame
}

func (b *Base) Mask() *sprite.Mask {
	if f := b.Frame(); f != nil {
		return f.Mask
	}
	return nil
}

// Bounds - прямоугольник текущего кадра вокруг центра сущности.
func (b *Base) Bounds() sprite.Rect {
	f := b.Frame()
	if f == nil {
		return sprite.Rect{X: b.Pos.X, Y: b.Pos.Y}
	}
	return sprite.RectAt(b.Pos.X, b.Pos.Y, f.W, f.H)
}

// SetRotation поворачивает сущность; кадр и маска пересобираются вместе.
func (b *Base) SetRotation(deg float64) {
	deg = utils.NormalizeDegrees(deg)
	if deg == b.Render.Rotation && b.frame != nil {
		return
	}
	b.Render.Rotation = deg
	b.refresh()
}

// SetImage меняет ключ изображения.
func (b *Base) SetImage(key string) {
	if key == b.Render.Key && b.frame != nil {
		return
	}
	b.Render.Key = key
	b.refresh()
}

func (b *Base) refresh() {
	if b.world == nil || b.world.Assets == nil {
		return
	}
	b.frame = b.world.Assets.Frame(b.Render.Key, b.Render.Rotation, b.Render.Scale)
}

// Kill удаляет сущность из всех групп и из мира. Повторный вызов ничего не делает.
func (b *Base) Kill() {
	if !b.alive {
		return
	}
	b.alive = false
	groups := b.groups
	b.groups = nil
	for _, g := range groups {
		g.remove(b.id)
	}
	delete(b.world.entities, b.id)
}

// Isolate выполняет fn от имени e. Паника убирает e из мира и дальше не идет,
// кроме нарушенного предусловия.
func Isolate(e Entity, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if types.AsPrecondition(r) != nil {
				panic(r)
			}
			log.Printf("Error: %s %d failed, removing: %v", e.Kind(), e.ID(), r)
			e.Kill()
		}
	}()
	fn()
}

// Overlaps - грубая проверка пересечения прямоугольников.
func Overlaps(a, b Entity) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

// MaskOverlaps - попиксельная проверка пересечения.
func MaskOverlaps(a, b Entity) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Overlaps(rb) {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return true
	}
	return sprite.MaskCollide(ma, ra, mb, rb)
}
