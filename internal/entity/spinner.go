// internal/entity/spinner.go
package entity

import (
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/utils"
)

// SpinnerState - фаза движения SpinnerGrunt
type SpinnerState int

const (
	SpinnerMovingToPosition SpinnerState = iota
	SpinnerRotating
)

// SpinnerConfig - параметры появления одного SpinnerGrunt
type SpinnerConfig struct {
	Weapon *Weapon
	Health int
	// Spawn - явная точка остановки (для построений особых событий); nil - случайная.
	Spawn     *utils.Point
	Rotation  float64
	Callbacks []func()
	Special   bool
}

// SpinnerGrunt въезжает сбоку, останавливается и бесконечно вращается, стреляя.
type SpinnerGrunt struct {
	Enemy
	State          SpinnerState
	Quadrant       defs.Side
	StoppingX      float64
	RotationAmount float64
}

// RandomSpinnerStop выбирает случайную точку остановки: грант проезжает от края
// экрана MinTravel..MaxTravel пикселей.
func RandomSpinnerStop(w *World) utils.Point {
	tuning := defs.SpinnerGroup
	offscreen := float64(tuning.OffscreenAmount)
	y := float64(w.Rng.IntRange(tuning.ScreenBuffer, int(w.Screen.H)-tuning.ScreenBuffer))
	travel := float64(w.Rng.IntRange(tuning.MinTravel, tuning.MaxTravel))
	if w.Rng.Intn(2) == 0 {
		return utils.Point{X: -offscreen + travel, Y: y}
	}
	return utils.Point{X: w.Screen.W + offscreen - travel, Y: y}
}

// NewSpinnerGrunt создает гранта за левым или правым краем экрана.
// Сторона выбирается по точке остановки: левая половина экрана - слева.
func NewSpinnerGrunt(w *World, def defs.EnemyDefinition, cfg SpinnerConfig) *SpinnerGrunt {
	offscreen := float64(defs.SpinnerGroup.OffscreenAmount)
	stop := cfg.Spawn
	if stop == nil {
		p := RandomSpinnerStop(w)
		stop = &p
	}
	quadrant, x := defs.SideLeft, -offscreen
	if stop.X >= w.Screen.W/2 {
		quadrant, x = defs.SideRight, w.Screen.W+offscreen
	}
	health := cfg.Health
	if health <= 0 {
		health = def.Health
	}

	g := &SpinnerGrunt{
		Enemy: Enemy{
			Character: newCharacter(w, KindSpinner, def.ID, health, def.SpawnSpeed, def.ImageScale, cfg.Rotation, x, stop.Y, config.LayerCharacter),
		},
		State:          SpinnerMovingToPosition,
		Quadrant:       quadrant,
		StoppingX:      stop.X,
		RotationAmount: def.RotationAmount,
	}
	if cfg.Weapon != nil {
		g.Weapons = []*Weapon{cfg.Weapon}
	}
	for _, cb := range cfg.Callbacks {
		g.AddDeathCallback(cb)
	}
	g.initEnemy(def, cfg.Special)
	w.Register(g)
	return g
}

// Transitioning - грант еще выезжает на позицию
func (g *SpinnerGrunt) Transitioning() bool {
	return g.State == SpinnerMovingToPosition
}

func (g *SpinnerGrunt) Update(_ *UpdateContext) {
	g.animate()
	switch g.State {
	case SpinnerMovingToPosition:
		g.moveToPosition()
	case SpinnerRotating:
		g.SetRotation(g.Render.Rotation - g.RotationAmount)
	}
}

func (g *SpinnerGrunt) moveToPosition() {
	if g.Quadrant == defs.SideLeft {
		g.Pos.X += g.Speed
		if g.Pos.X >= g.StoppingX {
			g.Pos.X = g.StoppingX
			g.State = SpinnerRotating
		}
		return
	}
	g.Pos.X -= g.Speed
	if g.Pos.X <= g.StoppingX {
		g.Pos.X = g.StoppingX
		g.State = SpinnerRotating
	}
}

// Attack - атакует только во время вращения.
func (g *SpinnerGrunt) Attack() int {
	if g.State != SpinnerRotating {
		return 0
	}
	return g.Fire()
}
