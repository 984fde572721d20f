// internal/system/upgrade_group.go
package system

import (
	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
)

// HealthUpgradeGroup решает, выпадает ли улучшение здоровья после убийства.
// Для каждого вида улучшения хранится число убийств на момент его последнего выпадения.
type HealthUpgradeGroup struct {
	world *entity.World

	BaseForSmall int
	BaseForMax   int
}

func NewHealthUpgradeGroup(w *entity.World) *HealthUpgradeGroup {
	return &HealthUpgradeGroup{world: w}
}

// CreateOnProbability бросает жребий на выпадение улучшения в точке (x, y).
// Улучшение максимального здоровья исключает обычное в том же вызове, только если оно выпало.
func (g *HealthUpgradeGroup) CreateOnProbability(x, y float64) *entity.Upgrade {
	w := g.world
	kills := w.Kills
	drops := defs.HealthDrops

	maxDef := defs.UpgradeDefs[defs.MaxHealth]
	if kills > g.BaseForMax+drops.MaxThreshold && w.Rng.Float64() <= maxDef.DropProbability {
		g.BaseForMax = kills
		return g.drop(maxDef, x, y)
	}

	smallDef := defs.UpgradeDefs[defs.SmallHealth]
	if kills > g.BaseForSmall+drops.WeakThreshold && w.Rng.Float64() <= smallDef.DropProbability {
		g.BaseForSmall = kills
		return g.drop(smallDef, x, y)
	}
	return nil
}

func (g *HealthUpgradeGroup) drop(def defs.UpgradeDefinition, x, y float64) *entity.Upgrade {
	u := entity.NewUpgrade(g.world, def, x, y)
	g.world.Upgrades.Add(u)
	return u
}
