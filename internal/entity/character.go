// internal/entity/character.go
package entity

import (
	"hyperlydian/internal/component"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/utils"
)

// AnimationIncrement - шаг счетчика кадров анимации персонажей
const AnimationIncrement = 0.25

// Character - общая часть игрока и врагов: здоровье, оружие, анимация и смерть.
type Character struct {
	Base
	HP          component.Health
	Speed       float64
	Anim        component.Animation
	Weapons     []*Weapon
	WeaponIndex int
	// Расстояние от центра до точки вылета снарядов
	SpawnDelta float64

	imageBase      string
	deathCallbacks []func()
	beforeDeath    func()
	dying          bool
}

func newCharacter(w *World, kind Kind, imageBase string, health int, speed, scale, rotation, x, y float64, layer int) Character {
	c := Character{
		Base:      newBase(w, kind, imageBase+"/"+string(defs.ImageDefault), layer, scale, rotation, x, y),
		HP:        component.Health{Value: health, Max: health},
		Speed:     speed,
		Anim:      component.Animation{State: defs.ImageDefault, Increment: AnimationIncrement},
		imageBase: imageBase,
	}
	return c
}

func (c *Character) Health() int    { return c.HP.Value }
func (c *Character) MaxHealth() int { return c.HP.Max }
func (c *Character) Dead() bool     { return c.HP.Dead() }

// Weapon - экипированное оружие
func (c *Character) Weapon() *Weapon {
	if c.WeaponIndex < 0 || c.WeaponIndex >= len(c.Weapons) {
		return nil
	}
	return c.Weapons[c.WeaponIndex]
}

// SwitchWeapon выбирает оружие по индексу; неверный индекс игнорируется.
func (c *Character) SwitchWeapon(i int) bool {
	if i < 0 || i >= len(c.Weapons) {
		return false
	}
	c.WeaponIndex = i
	return true
}

// CycleWeapons переключает на следующее оружие по кругу.
func (c *Character) CycleWeapons() {
	if len(c.Weapons) > 0 {
		c.WeaponIndex = (c.WeaponIndex + 1) % len(c.Weapons)
	}
}

// AddDeathCallback добавляет функцию, вызываемую при смерти.
func (c *Character) AddDeathCallback(fn func()) {
	c.deathCallbacks = append(c.deathCallbacks, fn)
}

// Fire стреляет из экипированного оружия в направлении поворота.
func (c *Character) Fire() int {
	w := c.Weapon()
	if w == nil {
		return 0
	}
	dx, dy := utils.Heading(c.Render.Rotation)
	return w.Attack(c.Pos.X+dx*c.SpawnDelta, c.Pos.Y+dy*c.SpawnDelta, c.Render.Rotation)
}

// TakeDamage уменьшает здоровье и показывает вспышку урона.
// Возвращает true, если персонаж умер именно от этого урона.
func (c *Character) TakeDamage(damage int) bool {
	if !c.alive || c.dying || c.HP.Dead() {
		return false
	}
	died := c.HP.Damage(damage)
	c.startAnimation(defs.ImageHit)
	if died {
		c.Die()
	}
	return died
}

// Die выполняет переход в смерть ровно один раз: колбэки, затем удаление из всех групп.
// Удаление выполняется даже если колбэк паникует.
func (c *Character) Die() {
	if c.dying || !c.alive {
		return
	}
	c.dying = true
	defer c.Kill()
	if c.beforeDeath != nil {
		c.beforeDeath()
	}
	for _, cb := range c.deathCallbacks {
		cb()
	}
}

func (c *Character) startAnimation(state defs.ImageState) {
	c.Anim.Start(state, 1, false)
	c.SetImage(c.imageBase + "/" + string(state))
}

// animate продвигает анимацию и возвращает изображение по умолчанию по ее окончании.
func (c *Character) animate() {
	if c.Anim.Advance() {
		c.SetImage(c.imageBase + "/" + string(defs.ImageDefault))
	}
}

// Enemy - общая часть врагов: учет статистики и событие гибели.
type Enemy struct {
	Character
	Info component.Enemy
}

func (e *Enemy) initEnemy(def defs.EnemyDefinition, special bool) {
	w := e.world
	e.special = special
	e.SpawnDelta = def.ProjectileSpawnDelta
	e.Info = component.Enemy{
		DefID:        def.ID,
		Score:        def.Score,
		SpecialEvent: special,
		SpawnTime:    w.Now(),
	}
	e.beforeDeath = e.recordDeath

	w.Stats.Add(stats.EnemiesTotal, 1)
	if special {
		w.Stats.Add(stats.EnemiesSpecial, 1)
	} else {
		w.Stats.Add(stats.EnemiesStandard, 1)
	}
}

func (e *Enemy) recordDeath() {
	w := e.world
	now := w.Now()
	w.Stats.Add(stats.EnemiesLifespan, now-e.Info.SpawnTime)
	w.Stats.Add(stats.PlayerBetweenKills, now-w.lastKillTime)
	w.lastKillTime = now
	w.Kills++
	w.Score += e.Info.Score
	w.Stats.Add(stats.EnemiesKilled, 1)
	w.Stats.Add(stats.GameScore, float64(e.Info.Score))

	if w.Dispatcher != nil {
		w.Dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
			ID:           e.id,
			DefID:        e.Info.DefID,
			SpecialEvent: e.special,
			X:            e.Pos.X,
			Y:            e.Pos.Y,
		}})
	}
}

// Grunt - враг, который сначала выходит на позицию и только потом атакует.
type Grunt interface {
	Entity
	Transitioning() bool
	TakeDamage(damage int) bool
	Attack() int
}
