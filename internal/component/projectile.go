// internal/component/projectile.go
package component

import "hyperlydian/internal/defs"

// Projectile представляет летящий снаряд.
// Угол движения фиксируется при выстреле.
type Projectile struct {
	Type      defs.ProjectileKind
	Variant   int
	Damage    int
	Speed     float64
	Angle     float64
	SpawnX    float64
	SpawnY    float64
	TrackStat bool
}
