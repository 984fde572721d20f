// internal/entity/projectile.go
package entity

import (
	"hyperlydian/internal/component"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/utils"
)

// ProjectileConfig - параметры одного снаряда
type ProjectileConfig struct {
	Kind      defs.ProjectileKind
	Variant   int
	Damage    int
	Speed     float64
	Angle     float64
	X, Y      float64
	Scale     float64
	TrackStat bool
	Special   bool
	Layer     int
}

// Projectile летит по прямой под углом, заданным при выстреле.
type Projectile struct {
	Base
	component.Projectile
}

// NewProjectile создает снаряд и регистрирует его в мире.
func NewProjectile(w *World, cfg ProjectileConfig) *Projectile {
	p := &Projectile{
		Base: newBase(w, KindProjectile, cfg.Kind.ImageKey(cfg.Variant), cfg.Layer, cfg.Scale, cfg.Angle, cfg.X, cfg.Y),
		Projectile: component.Projectile{
			Type:      cfg.Kind,
			Variant:   cfg.Variant,
			Damage:    cfg.Damage,
			Speed:     cfg.Speed,
			Angle:     cfg.Angle,
			SpawnX:    cfg.X,
			SpawnY:    cfg.Y,
			TrackStat: cfg.TrackStat,
		},
	}
	p.special = cfg.Special
	w.Register(p)
	return p
}

// Update двигает снаряд и удаляет его в первом же кадре за пределами экрана.
func (p *Projectile) Update(_ *UpdateContext) {
	dx, dy := utils.Heading(p.Angle)
	p.Pos.X += dx * p.Speed
	p.Pos.Y += dy * p.Speed
	if p.Bounds().Outside(p.world.Screen) {
		p.Kill()
	}
}

// DistanceTraveled - расстояние от точки выстрела
func (p *Projectile) DistanceTraveled() float64 {
	return utils.Distance(p.SpawnX, p.SpawnY, p.Pos.X, p.Pos.Y)
}

// HitType - имя варианта для статистики попаданий ("" если варианты безымянные)
func (p *Projectile) HitType() string {
	return p.Type.VariantName(p.Variant)
}
