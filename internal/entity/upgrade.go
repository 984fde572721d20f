// internal/entity/upgrade.go
package entity

import (
	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/types"
)

// Параметры "дрожания" и мигания улучшений
var (
	upgradeMoves     = [][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	upgradeAlphas    = []uint8{255, 0}
	upgradeMoveStep  = 0.05
	upgradeFlashStep = 0.125
)

// UpgradeFlashSpeedup - за сколько секунд до исчезновения мигание ускоряется вдвое
const UpgradeFlashSpeedup = 1.0

// Upgrade - подбираемое улучшение здоровья с ограниченным временем жизни.
type Upgrade struct {
	Base
	Def       defs.UpgradeDefinition
	TimeAlive float64 // секунды
	Expiring  bool

	spawnTime float64
	movePos   float64
	flash     component.AlphaFlash
}

// NewUpgrade кладет улучшение в точку (x, y).
func NewUpgrade(w *World, def defs.UpgradeDefinition, x, y float64) *Upgrade {
	u := &Upgrade{
		Base:      newBase(w, KindUpgrade, "upgrade/"+def.ID, config.LayerUpgrade, def.ImageScale, 0, x, y),
		Def:       def,
		spawnTime: w.Now(),
		flash:     component.AlphaFlash{Values: upgradeAlphas},
	}
	w.Register(u)
	w.Stats.Add(stats.UpgradesDropped, 1)
	return u
}

// Update требует длительность кадра: от нее зависит время жизни.
func (u *Upgrade) Update(ctx *UpdateContext) {
	if ctx == nil || ctx.Delta <= 0 {
		types.Precondition("Upgrade.Update", "upgrade %d updated without a frame delta", u.id)
	}
	u.jiggle()

	u.TimeAlive += ctx.Delta
	if u.Expiring {
		u.showExpiration()
	} else if u.TimeAlive > u.Def.TTLSeconds-u.Def.ExpirationSeconds {
		u.Expiring = true
	}
}

func (u *Upgrade) jiggle() {
	n := float64(len(upgradeMoves))
	u.movePos += upgradeMoveStep
	if u.movePos >= n {
		u.movePos -= n
	}
	m := upgradeMoves[int(u.movePos)]
	u.Pos.X += m[0]
	u.Pos.Y += m[1]
}

func (u *Upgrade) showExpiration() {
	if u.TimeAlive > u.Def.TTLSeconds {
		w := u.world
		w.Stats.Add(stats.UpgradesMissed, 1)
		w.Stats.Add(stats.UpgradesLifespan, w.Now()-u.spawnTime)
		u.Kill()
		return
	}
	step := upgradeFlashStep
	if u.Def.TTLSeconds-u.TimeAlive < UpgradeFlashSpeedup {
		step *= 2
	}
	u.Render.Alpha = u.flash.Advance(step)
}

// Collect применяет улучшение к игроку и убирает его.
func (u *Upgrade) Collect(p *Player) {
	if !u.alive {
		return
	}
	w := u.world
	p.Heal(u.Def.HealthIncrease)
	w.Stats.Add(stats.UpgradesCollected, 1)
	w.Stats.Add(stats.UpgradesLifespan, w.Now()-u.spawnTime)
	u.Kill()
}
