// internal/entity/strafer.go
package entity

import (
	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/types"
)

// StraferState - фаза движения StraferGrunt
type StraferState int

const (
	StraferMovingToPosition StraferState = iota
	StraferStrafing
)

// Направления появления
const (
	SpawnFromTop    = 1
	SpawnFromBottom = -1
)

// StraferSpawnOffset - насколько за краем экрана появляется грант
const StraferSpawnOffset = 100

// StraferConfig - параметры появления одного StraferGrunt
type StraferConfig struct {
	Weapon         *Weapon
	Health         int
	Row            int
	SpawnDirection int
	Special        bool
}

// StraferGrunt выходит на свой ряд и затем ходит по нему из стороны в сторону.
type StraferGrunt struct {
	Enemy
	State           StraferState
	Row             int
	SpawnDirection  int
	StrafeDirection int
	StrafeSpeed     float64

	stoppingY    float64
	hasStop      bool
	framesAlive  int
	switchAt     int
	minStrafe    int
	maxStrafe    int
	overEnemies  component.OverlapSet
	overUpgrades component.OverlapSet
	overPlayer   component.OverlapSet
}

// NewStraferGrunt создает гранта за верхним или нижним краем экрана.
// Точку остановки нужно задать через SetStoppingPoint до первого Update.
func NewStraferGrunt(w *World, def defs.EnemyDefinition, cfg StraferConfig) *StraferGrunt {
	tuning := defs.StraferGroup
	x := float64(w.Rng.IntRange(50, int(w.Screen.W)-50))
	y := -float64(StraferSpawnOffset)
	rotation := def.InitialRotation
	if cfg.SpawnDirection == SpawnFromBottom {
		y = w.Screen.H + StraferSpawnOffset
		rotation = 90
	} else {
		cfg.SpawnDirection = SpawnFromTop
	}
	health := cfg.Health
	if health <= 0 {
		health = def.Health
	}

	g := &StraferGrunt{
		Enemy: Enemy{
			Character: newCharacter(w, KindStrafer, def.ID, health, def.SpawnSpeed, def.ImageScale, rotation, x, y, config.LayerCharacter),
		},
		State:           StraferMovingToPosition,
		Row:             cfg.Row,
		SpawnDirection:  cfg.SpawnDirection,
		StrafeDirection: 1,
		StrafeSpeed:     def.StrafeSpeed,
		minStrafe:       tuning.MinStrafeFrames,
		maxStrafe:       tuning.MaxStrafeFrames,
	}
	g.switchAt = w.Rng.IntRange(g.minStrafe, g.maxStrafe)
	if cfg.Weapon != nil {
		g.Weapons = []*Weapon{cfg.Weapon}
	}
	g.initEnemy(def, cfg.Special)
	w.Register(g)
	return g
}

// SetStoppingPoint задает глубину ряда, на которой грант переходит к стрейфу.
func (g *StraferGrunt) SetStoppingPoint(y float64) {
	g.stoppingY = y
	g.hasStop = true
}

// StoppingPoint - глубина ряда
func (g *StraferGrunt) StoppingPoint() float64 {
	return g.stoppingY
}

// Transitioning - грант еще выходит на позицию
func (g *StraferGrunt) Transitioning() bool {
	return g.State == StraferMovingToPosition
}

func (g *StraferGrunt) Update(_ *UpdateContext) {
	if !g.hasStop {
		types.Precondition("StraferGrunt.Update", "stopping point of grunt %d was never set", g.id)
	}
	g.pruneOverlaps()
	g.animate()
	g.framesAlive++

	switch g.State {
	case StraferMovingToPosition:
		g.moveToPosition()
	case StraferStrafing:
		g.strafe()
	}
}

func (g *StraferGrunt) moveToPosition() {
	g.Pos.Y += float64(g.SpawnDirection) * g.Speed
	reached := g.Pos.Y >= g.stoppingY
	if g.SpawnDirection == SpawnFromBottom {
		reached = g.Pos.Y <= g.stoppingY
	}
	if reached {
		g.Pos.Y = g.stoppingY
		g.State = StraferStrafing
	}
}

func (g *StraferGrunt) strafe() {
	g.Pos.X += float64(g.StrafeDirection) * g.StrafeSpeed

	if g.framesAlive > g.switchAt {
		g.SwitchStrafeDirection()
		g.switchAt = g.framesAlive + g.world.Rng.IntRange(g.minStrafe, g.maxStrafe)
	}

	r := g.Bounds()
	s := g.world.Screen
	if r.Left() < s.Left() {
		g.Pos.X += s.Left() - r.Left()
		g.StrafeDirection = 1
	} else if r.Right() > s.Right() {
		g.Pos.X -= r.Right() - s.Right()
		g.StrafeDirection = -1
	}
}

// SwitchStrafeDirection разворачивает гранта.
func (g *StraferGrunt) SwitchStrafeDirection() {
	g.StrafeDirection = -g.StrafeDirection
}

// Attack - атакует только после выхода на ряд.
func (g *StraferGrunt) Attack() int {
	if g.State != StraferStrafing {
		return 0
	}
	return g.Fire()
}

// OnEnemyCollision разворачивает гранта при столкновении с другим врагом.
// Во время выхода на позицию грант подстраивается под направление соседа-стрейфера.
func (g *StraferGrunt) OnEnemyCollision(other Entity) bool {
	if g.Transitioning() {
		if s, ok := other.(*StraferGrunt); ok {
			g.StrafeDirection = -s.StrafeDirection
			return true
		}
		return false
	}
	if o, ok := other.(Grunt); ok && o.Transitioning() {
		return false
	}
	if !g.overEnemies.Add(other.ID()) {
		return false
	}
	g.SwitchStrafeDirection()
	return true
}

// OnUpgradeCollision разворачивает гранта один раз на каждое новое перекрытие с улучшением.
func (g *StraferGrunt) OnUpgradeCollision(u Entity) bool {
	if !g.overUpgrades.Add(u.ID()) {
		return false
	}
	g.SwitchStrafeDirection()
	return true
}

// OnPlayerCollision разворачивает гранта один раз на каждое новое перекрытие с игроком.
func (g *StraferGrunt) OnPlayerCollision(p Entity) bool {
	if !g.overPlayer.Add(p.ID()) {
		return false
	}
	g.SwitchStrafeDirection()
	return true
}

// pruneOverlaps забывает партнеров, с которыми грант больше не пересекается.
func (g *StraferGrunt) pruneOverlaps() {
	rectStill := func(id types.EntityID) bool {
		e, ok := g.world.Lookup(id)
		return ok && Overlaps(g, e)
	}
	g.overEnemies.Prune(rectStill)
	g.overUpgrades.Prune(rectStill)
	g.overPlayer.Prune(func(id types.EntityID) bool {
		e, ok := g.world.Lookup(id)
		return ok && MaskOverlaps(g, e)
	})
}
