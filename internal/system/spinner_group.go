// internal/system/spinner_group.go
package system

import (
	"log"

	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	internalutils "hyperlydian/internal/utils"
	"hyperlydian/pkg/sprite"
	"hyperlydian/pkg/utils"
)

// Оружие SpinnerGrunt
const (
	spinnerShotDamage = 1
	spinnerShotScale  = 0.3
)

// SpinnerSpawn - параметры появления одного SpinnerGrunt.
type SpinnerSpawn struct {
	// Spawn - явная точка остановки. Без нее точка выбирается случайно
	// так, чтобы грант не перекрывал уже существующих.
	Spawn     *internalutils.Point
	Rotation  *float64
	Callbacks []func()
	Special   bool
	Muzzles   [][2]float64
}

// SpinnerGruntGroup ограничивает число обычных SpinnerGrunt на экране.
// Гранты особых событий в счетчик не входят.
type SpinnerGruntGroup struct {
	world  *entity.World
	timers *event.TimerBus
	def    defs.EnemyDefinition
	tuning defs.SpinnerGroupTuning

	onScreen int

	MaxGrunts        int
	GruntsPerEllipse int
	HealthTier       int
	SpawnInterval    float64
}

func NewSpinnerGruntGroup(w *entity.World, timers *event.TimerBus) *SpinnerGruntGroup {
	tuning := defs.SpinnerGroup
	s := &SpinnerGruntGroup{
		world:            w,
		timers:           timers,
		def:              defs.EnemyDefs[defs.SpinnerGrunt],
		tuning:           tuning,
		MaxGrunts:        tuning.InitialMaxGrunts,
		GruntsPerEllipse: tuning.InitialEllipseGrunts,
		SpawnInterval:    float64(tuning.InitialTimer),
	}
	if w.Settings.EasyMode {
		s.MaxGrunts = tuning.EasyModeGrunts
		s.GruntsPerEllipse = tuning.EasyModeEllipseGrunts
	}
	w.Spinners.OnRemove(func(e entity.Entity) {
		if !e.SpecialEvent() {
			s.onScreen--
		}
	})
	if timers != nil {
		timers.Set(event.SpawnSpinnerGrunt, s.SpawnInterval)
	}
	log.Printf("Spinner group: max %d on screen, %d per ellipse", s.MaxGrunts, s.GruntsPerEllipse)
	return s
}

// OnScreen - число обычных SpinnerGrunt в игре
func (s *SpinnerGruntGroup) OnScreen() int {
	return s.onScreen
}

// IsFull - на экране уже MaxGrunts обычных грантов
func (s *SpinnerGruntGroup) IsFull() bool {
	return s.onScreen >= s.MaxGrunts
}

// CreateNewGrunt создает гранта. Явная точка принимается как есть, случайная
// перевыбирается, пока грант перекрывает других (не больше SpawnAttempts раз).
func (s *SpinnerGruntGroup) CreateNewGrunt(opts SpinnerSpawn) (*entity.SpinnerGrunt, error) {
	w := s.world
	wp, err := entity.NewWeapon(w, s.weaponConfig(opts))
	if err != nil {
		return nil, err
	}

	rotation := float64(w.Rng.IntRange(0, 359))
	if opts.Rotation != nil {
		rotation = *opts.Rotation
	}
	stop := opts.Spawn
	if stop == nil {
		p := s.findFreeStop(rotation)
		stop = &p
	}

	g := entity.NewSpinnerGrunt(w, s.def, entity.SpinnerConfig{
		Weapon:    wp,
		Health:    s.Health(),
		Spawn:     stop,
		Rotation:  rotation,
		Callbacks: opts.Callbacks,
		Special:   opts.Special,
	})
	if !opts.Special {
		s.onScreen++
	}
	w.AllEnemies.Add(g)
	w.Spinners.Add(g)
	return g, nil
}

// findFreeStop ищет случайную точку остановки, где новый грант не перекроет остальных
// ни при появлении, ни после остановки.
func (s *SpinnerGruntGroup) findFreeStop(rotation float64) internalutils.Point {
	w := s.world
	fw, fh := 0.0, 0.0
	if w.Assets != nil {
		f := w.Assets.Frame(s.def.ID+"/"+string(defs.ImageDefault), rotation, s.def.ImageScale)
		fw, fh = f.W, f.H
	}

	offscreen := float64(s.tuning.OffscreenAmount)
	var p internalutils.Point
	for attempt := 0; attempt < max(s.tuning.SpawnAttempts, 1); attempt++ {
		p = entity.RandomSpinnerStop(w)
		spawnX := -offscreen
		if p.X >= w.Screen.W/2 {
			spawnX = w.Screen.W + offscreen
		}
		if !s.overlapsExisting(sprite.RectAt(spawnX, p.Y, fw, fh)) && !s.overlapsExisting(sprite.RectAt(p.X, p.Y, fw, fh)) {
			return p
		}
	}
	log.Printf("WARNING: no free spinner spot after %d attempts", s.tuning.SpawnAttempts)
	return p
}

func (s *SpinnerGruntGroup) overlapsExisting(r sprite.Rect) bool {
	for _, e := range s.world.Spinners.Snapshot() {
		g, ok := e.(*entity.SpinnerGrunt)
		if !ok {
			continue
		}
		b := g.Bounds()
		stopRect := sprite.RectAt(g.StoppingX, g.Pos.Y, b.W, b.H)
		if r.Overlaps(b) || r.Overlaps(stopRect) {
			return true
		}
	}
	return false
}

func (s *SpinnerGruntGroup) weaponConfig(opts SpinnerSpawn) entity.WeaponConfig {
	kind := defs.ProjectileKinds[defs.Accidental]
	rof := s.tuning.RateOfFire
	if s.world.Settings.EasyMode {
		rof = s.tuning.EasyRateOfFire
	}
	return entity.WeaponConfig{
		Projectile: defs.Accidental,
		Ammo:       entity.InfiniteAmmo,
		Damage:     spinnerShotDamage,
		Speed:      float64(s.tuning.ShotSpeed),
		RateOfFire: float64(rof),
		Muzzles:    opts.Muzzles,
		Scale:      spinnerShotScale,
		Variant:    s.world.Rng.Intn(kind.NumVariants),
		Special:    opts.Special,
		Target:     s.world.EnemyProjectiles,
	}
}

// OvalStartingPositions - n точек на эллипсе вокруг центра экрана.
func (s *SpinnerGruntGroup) OvalStartingPositions(n int) []internalutils.Point {
	return internalutils.OvalStartingPositions(n, s.world.Screen)
}

// RotationAnglesFromStartPositions - углы, при которых гранты в точках смотрят в центр экрана.
func (s *SpinnerGruntGroup) RotationAnglesFromStartPositions(points []internalutils.Point) []float64 {
	return internalutils.RotationAnglesFromStartPositions(points, s.world.Screen)
}

// Health - здоровье следующего гранта с учетом надбавки сложности
func (s *SpinnerGruntGroup) Health() int {
	return max(s.tuning.MinHealth, s.def.Health+s.HealthTier*s.tuning.HealthIncrement)
}

// ChangeMaxGrunts меняет допустимое число обычных грантов на экране.
func (s *SpinnerGruntGroup) ChangeMaxGrunts(delta int) bool {
	n := utils.Clamp(s.MaxGrunts+delta, 1, max(s.tuning.MaxGrunts, 1))
	if n == s.MaxGrunts {
		return false
	}
	s.MaxGrunts = n
	return true
}

// ChangeGruntsPerEllipse меняет размер построения для роя.
func (s *SpinnerGruntGroup) ChangeGruntsPerEllipse(delta int) bool {
	n := utils.Clamp(s.GruntsPerEllipse+delta, s.tuning.MinEllipseGrunts, s.tuning.MaxEllipseGrunts)
	if n == s.GruntsPerEllipse {
		return false
	}
	s.GruntsPerEllipse = n
	return true
}

// ChangeGruntHealth - как у страферов: снизу пол MinHealth, сверху без предела.
func (s *SpinnerGruntGroup) ChangeGruntHealth(delta int) bool {
	if delta < 0 && s.Health() <= s.tuning.MinHealth {
		return false
	}
	s.HealthTier += delta
	return true
}

// ChangeSpawnTimer: +1 ускоряет появление, -1 замедляет.
func (s *SpinnerGruntGroup) ChangeSpawnTimer(delta int) bool {
	next := utils.Clamp(s.SpawnInterval-float64(delta*s.tuning.TimerIncrement), float64(s.tuning.MinTimer), float64(s.tuning.MaxTimer))
	if next == s.SpawnInterval {
		return false
	}
	s.SpawnInterval = next
	if s.timers != nil {
		s.timers.SetInterval(event.SpawnSpinnerGrunt, next)
	}
	return true
}
