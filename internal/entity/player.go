// internal/entity/player.go
package entity

import (
	"log"

	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/types"
	"hyperlydian/internal/utils"
)

// PlayerInput - состояние управления на текущий кадр
type PlayerInput struct {
	Up, Down, Left, Right bool
	RotateLeft            bool // Q: против часовой
	RotateRight           bool // E: по часовой
	Fire                  bool
	Weapon                int // индекс выбранного оружия или -1
}

// NoInput - кадр без нажатий
var NoInput = PlayerInput{Weapon: -1}

// Player - корабль игрока
type Player struct {
	Character
	State          component.PlayerStateComponent
	RotationAmount float64
	input          PlayerInput
}

// NewPlayer создает игрока внизу по центру экрана со всем оружием из defs.Player.
func NewPlayer(w *World, def defs.PlayerDefinition) (*Player, error) {
	x := w.Screen.W / 2
	y := w.Screen.H - def.SpawnOffsetY
	p := &Player{
		Character:      newCharacter(w, KindPlayer, "player", def.Health, def.Speed, def.ImageScale, def.InitialRotation, x, y, config.LayerCharacter),
		RotationAmount: def.RotationAmount,
		input:          NoInput,
	}
	p.State.Invincible = w.Settings.PlayerInvincible
	p.beforeDeath = p.announceDeath

	for i, wd := range def.Weapons {
		wp, err := NewWeapon(w, WeaponConfig{
			Projectile: wd.Projectile,
			Color:      wd.Color,
			Ammo:       InfiniteAmmo,
			Damage:     wd.Damage,
			Speed:      wd.Speed,
			RateOfFire: wd.RateOfFire,
			Muzzles:    wd.Muzzles,
			Scale:      wd.Scale,
			Variant:    wd.Variant,
			TrackStat:  wd.TrackStat,
			Index:      i,
			Target:     w.PlayerProjectiles,
		})
		if err != nil {
			return nil, err
		}
		p.Weapons = append(p.Weapons, wp)
	}

	w.Register(p)
	w.Player = p
	w.Stats.Update(stats.PlayerHealth, float64(p.HP.Value))
	w.Stats.Update(stats.PlayerMaxHealth, float64(p.HP.Max))
	return p, nil
}

// SetInput задает управление на следующий Update.
func (p *Player) SetInput(in PlayerInput) {
	p.input = in
}

func (p *Player) Update(_ *UpdateContext) {
	p.animate()

	in := p.input
	if in.Weapon >= 0 && p.SwitchWeapon(in.Weapon) {
		p.world.Stats.Update(stats.WeaponSelected, float64(in.Weapon))
	}

	if in.Up {
		p.Pos.Y -= p.Speed
	}
	if in.Down {
		p.Pos.Y += p.Speed
	}
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}
	if in.RotateLeft {
		p.SetRotation(p.Render.Rotation + p.RotationAmount)
	}
	if in.RotateRight {
		p.SetRotation(p.Render.Rotation - p.RotationAmount)
	}
	p.clampToScreen()

	w := p.world
	w.Stats.Update(stats.PlayerX, p.Pos.X)
	w.Stats.Update(stats.PlayerY, p.Pos.Y)
	w.Stats.Update(stats.PlayerVerticalHalf, float64(p.VerticalHalf()))
}

// Attack стреляет, если нажата клавиша огня.
func (p *Player) Attack() int {
	if !p.input.Fire {
		return 0
	}
	return p.Fire()
}

func (p *Player) clampToScreen() {
	r := p.Bounds()
	s := p.world.Screen
	if r.Left() < s.Left() {
		p.Pos.X += s.Left() - r.Left()
	}
	if r.Right() > s.Right() {
		p.Pos.X -= r.Right() - s.Right()
	}
	if r.Top() < s.Top() {
		p.Pos.Y += s.Top() - r.Top()
	}
	if r.Bottom() > s.Bottom() {
		p.Pos.Y -= r.Bottom() - s.Bottom()
	}
}

// VerticalHalf - половина экрана, в которой находится игрок (stats.HalfTop или stats.HalfBottom).
func (p *Player) VerticalHalf() int {
	if p.Pos.Y < p.world.Screen.H/2 {
		return stats.HalfTop
	}
	return stats.HalfBottom
}

// TakeDamage учитывает неуязвимость и статистику потерянного здоровья.
func (p *Player) TakeDamage(damage int) bool {
	if p.State.Invincible {
		p.startAnimation(defs.ImageHit)
		return false
	}
	before := p.HP.Value
	died := p.Character.TakeDamage(damage)
	w := p.world
	w.Stats.Add(stats.PlayerHealthLost, float64(before-p.HP.Value))
	w.Stats.Update(stats.PlayerHealth, float64(p.HP.Value))
	return died
}

// Heal восстанавливает здоровье и показывает вспышку лечения.
func (p *Player) Heal(amount int) {
	p.HP.Heal(amount)
	p.startAnimation(defs.ImageHeal)
	p.world.Stats.Update(stats.PlayerHealth, float64(p.HP.Value))
}

func (p *Player) announceDeath() {
	log.Printf("Player died at %.0f ms", p.world.Now())
	if p.world.Dispatcher != nil {
		p.world.Dispatcher.Dispatch(event.Event{Type: event.PlayerDeath})
	}
}

// AddProjectilesInRange запоминает вражеские снаряды, пролетающие рядом.
func (p *Player) AddProjectilesInRange(ids ...types.EntityID) {
	for _, id := range ids {
		p.State.InRange.Add(id)
	}
}

// RegisterHit убирает попавший снаряд из набора уклонений.
func (p *Player) RegisterHit(pr *Projectile) {
	p.State.InRange.Remove(pr.ID())
	w := p.world
	w.Stats.Add(stats.PlayerHitDistance, pr.DistanceTraveled())
	if t := pr.HitType(); t != "" {
		w.Stats.Increase(stats.PlayerProjectileHit, t)
	}
}

// ResolveDodges засчитывает уклонение за каждый снаряд, который покинул зону рядом с игроком, не попав.
func (p *Player) ResolveDodges() int {
	dodged := 0
	r := p.Bounds()
	p.State.InRange.Prune(func(id types.EntityID) bool {
		e, ok := p.world.Lookup(id)
		if ok && e.Bounds().Overlaps(r) {
			return true
		}
		dodged++
		return false
	})
	if dodged > 0 {
		p.State.Dodges += dodged
		p.world.Stats.Add(stats.PlayerDodges, float64(dodged))
	}
	return dodged
}

// Distance до точки
func (p *Player) Distance(x, y float64) float64 {
	return utils.Distance(p.Pos.X, p.Pos.Y, x, y)
}
