// internal/entity/hazard.go
package entity

import (
	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/types"
	"hyperlydian/pkg/utils"
)

// Параметры падающих букв
const (
	HazardDamage   = 1
	HazardScale    = 1.2
	HazardMinFall  = 3.0
	HazardMaxFall  = 6.0
	HazardMaxDrift = 1.5
)

// Hazard - падающая буква особого события. Наносит урон при касании игрока.
type Hazard struct {
	Base
	Damage  int
	Fall    float64
	Drift   float64
	Variant int

	overlapping component.OverlapSet
}

// NewHazard создает букву над верхним краем экрана в случайной колонке.
func NewHazard(w *World) *Hazard {
	kind := defs.ProjectileKinds[defs.BlueMusicLetter]
	variant := w.Rng.Intn(kind.NumVariants)
	x := w.Rng.Uniform(0, w.Screen.W)
	h := &Hazard{
		Base:    newBase(w, KindHazard, kind.ImageKey(variant), config.LayerProjectile, HazardScale, float64(w.Rng.IntRange(-20, 20)), x, -40),
		Damage:  HazardDamage,
		Fall:    w.Rng.Uniform(HazardMinFall, HazardMaxFall),
		Drift:   w.Rng.Uniform(-HazardMaxDrift, HazardMaxDrift),
		Variant: variant,
	}
	h.special = true
	w.Register(h)
	return h
}

func (h *Hazard) Update(_ *UpdateContext) {
	h.overlapping.Prune(func(id types.EntityID) bool {
		e, ok := h.world.Lookup(id)
		return ok && MaskOverlaps(h, e)
	})

	h.Pos.X += h.Drift
	h.Pos.Y += h.Fall
	s := h.world.Screen
	if h.Pos.X < s.Left() {
		h.Drift = utils.Abs(h.Drift)
	} else if h.Pos.X > s.Right() {
		h.Drift = -utils.Abs(h.Drift)
	}
	if h.Bounds().Top() > s.Bottom() {
		h.Kill()
	}
}

// OnHazardCollision разводит две буквы по горизонтали, один раз на перекрытие.
func (h *Hazard) OnHazardCollision(other *Hazard) bool {
	if !h.overlapping.Add(other.ID()) {
		return false
	}
	if h.Pos.X < other.Pos.X {
		h.Drift = -utils.Abs(h.Drift)
	} else {
		h.Drift = utils.Abs(h.Drift)
	}
	return true
}
