// internal/entity/weapon.go
package entity

import (
	"errors"
	"fmt"
	"strconv"

	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/utils"
)

// InfiniteAmmo - значение Ammo, которое никогда не уменьшается
const InfiniteAmmo = -1

// DefaultRateOfFire используется, если скорострельность не задана, мс
const DefaultRateOfFire = 200

var ErrNoTargetGroup = errors.New("weapon has no target group")

// WeaponConfig описывает оружие при создании.
type WeaponConfig struct {
	Projectile string
	Color      string
	Ammo       int     // InfiniteAmmo или конечное число снарядов
	Damage     int     // 0 - урон снаряда по умолчанию
	Speed      float64 // 0 - скорость снаряда по умолчанию
	RateOfFire float64 // мс между залпами
	Muzzles    [][2]float64
	Scale      float64
	Variant    int // < 0 - случайный вариант на каждый выстрел
	TrackStat  bool
	Index      int
	Special    bool
	Target     *Group
}

// Weapon - фабрика снарядов с ограничением скорострельности.
type Weapon struct {
	world      *World
	Kind       defs.ProjectileKind
	Ammo       int
	RateOfFire float64
	Damage     int
	Speed      float64
	Muzzles    [][2]float64
	Scale      float64
	Variant    int
	TrackStat  bool
	Index      int
	Special    bool
	Target     *Group

	lastFired float64
	hasFired  bool
}

// NewWeapon проверяет конфигурацию и создает оружие.
func NewWeapon(w *World, cfg WeaponConfig) (*Weapon, error) {
	kind, err := defs.LookupProjectile(cfg.Projectile, cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to create weapon: %w", err)
	}
	if cfg.Variant >= 0 {
		if err := kind.Validate(cfg.Variant); err != nil {
			return nil, fmt.Errorf("failed to create weapon: %w", err)
		}
	}
	if cfg.Target == nil {
		return nil, fmt.Errorf("failed to create %s weapon: %w", kind.ID, ErrNoTargetGroup)
	}
	if cfg.Ammo == 0 {
		cfg.Ammo = InfiniteAmmo
	}
	if cfg.RateOfFire <= 0 {
		cfg.RateOfFire = DefaultRateOfFire
	}
	if len(cfg.Muzzles) == 0 {
		cfg.Muzzles = [][2]float64{{0, 0}}
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	return &Weapon{
		world:      w,
		Kind:       kind,
		Ammo:       cfg.Ammo,
		RateOfFire: cfg.RateOfFire,
		Damage:     cfg.Damage,
		Speed:      cfg.Speed,
		Muzzles:    cfg.Muzzles,
		Scale:      cfg.Scale,
		Variant:    cfg.Variant,
		TrackStat:  cfg.TrackStat,
		Index:      cfg.Index,
		Special:    cfg.Special,
		Target:     cfg.Target,
	}, nil
}

// Empty - закончились ли снаряды
func (wp *Weapon) Empty() bool {
	return wp.Ammo == 0
}

// Ready - можно ли стрелять прямо сейчас
func (wp *Weapon) Ready() bool {
	if wp.Empty() {
		return false
	}
	return !wp.hasFired || wp.world.Now()-wp.lastFired >= wp.RateOfFire
}

// Attack стреляет из всех стволов разом, если позволяет скорострельность.
// Решение принимается один раз на вызов. Возвращает число выпущенных снарядов.
func (wp *Weapon) Attack(x, y, angle float64) int {
	if !wp.Ready() {
		return 0
	}
	wp.lastFired = wp.world.Now()
	wp.hasFired = true

	fired := 0
	for _, m := range wp.Muzzles {
		if wp.Empty() {
			break
		}
		mx, my := utils.MuzzlePoint(x, y, m[0], m[1], angle)
		wp.fire(mx, my, angle)
		fired++
	}
	return fired
}

func (wp *Weapon) fire(x, y, angle float64) {
	variant := wp.Variant
	if variant < 0 {
		variant = wp.world.Rng.Intn(max(wp.Kind.NumVariants, 1))
	}
	damage := wp.Damage
	if damage == 0 {
		damage = wp.Kind.DefaultDamage
	}
	speed := wp.Speed
	if speed == 0 {
		speed = wp.Kind.DefaultSpeed
	}

	p := NewProjectile(wp.world, ProjectileConfig{
		Kind:      wp.Kind,
		Variant:   variant,
		Damage:    damage,
		Speed:     speed,
		Angle:     angle,
		X:         x,
		Y:         y,
		Scale:     wp.Scale,
		TrackStat: wp.TrackStat,
		Special:   wp.Special,
		Layer:     config.LayerProjectile,
	})
	wp.Target.Add(p)

	if wp.Ammo != InfiniteAmmo {
		wp.Ammo--
	}
	if wp.TrackStat {
		wp.world.Stats.Increase(stats.WeaponShots, strconv.Itoa(wp.Index))
		wp.world.Stats.Add(stats.WeaponTotalShots, 1)
	}
}

// Reload добавляет n снарядов. На бесконечный боезапас не влияет.
func (wp *Weapon) Reload(n int) {
	if wp.Ammo == InfiniteAmmo || n <= 0 {
		return
	}
	wp.Ammo += n
}

// ChangeRateOfFire сдвигает интервал между залпами, не опускаясь ниже 1 мс.
func (wp *Weapon) ChangeRateOfFire(delta float64) {
	wp.RateOfFire = max(wp.RateOfFire+delta, 1)
}
