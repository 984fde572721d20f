// internal/system/strafer_group.go
package system

import (
	"log"

	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/pkg/utils"
)

// Оружие StraferGrunt
const (
	straferShotDamage = 1
	straferShotScale  = 0.35
)

// StraferGruntGroup расставляет StraferGrunt по рядам. Для каждой стороны появления
// ведется счетчик занятых мест в каждом ряду; место освобождается, когда грант
// покидает группу w.Strafers.
type StraferGruntGroup struct {
	world  *entity.World
	timers *event.TimerBus
	def    defs.EnemyDefinition
	tuning defs.StraferGroupTuning

	top    []int
	bottom []int

	MaxRows       int
	GruntsPerRow  int
	HealthTier    int
	SpawnInterval float64
}

func NewStraferGruntGroup(w *entity.World, timers *event.TimerBus) *StraferGruntGroup {
	tuning := defs.StraferGroup
	rows := tuning.InitialRows
	if w.Settings.EasyMode {
		rows = tuning.EasyModeRows
	}
	rows = utils.Clamp(rows, 1, tuning.MaxRows)

	s := &StraferGruntGroup{
		world:         w,
		timers:        timers,
		def:           defs.EnemyDefs[defs.StraferGrunt],
		tuning:        tuning,
		top:           make([]int, rows),
		bottom:        make([]int, rows),
		MaxRows:       rows,
		GruntsPerRow:  tuning.InitialGruntsPerRow,
		SpawnInterval: float64(tuning.InitialTimer),
	}
	w.Strafers.OnRemove(s.release)
	if timers != nil {
		timers.Set(event.SpawnStraferGrunt, s.SpawnInterval)
	}
	log.Printf("Strafer group: %d rows, %d grunts per row", s.MaxRows, s.GruntsPerRow)
	return s
}

func (s *StraferGruntGroup) occupancy(direction int) []int {
	if direction == entity.SpawnFromBottom {
		return s.bottom
	}
	return s.top
}

// Occupancy возвращает копию счетчиков рядов для стороны direction.
func (s *StraferGruntGroup) Occupancy(direction int) []int {
	return append([]int(nil), s.occupancy(direction)...)
}

// Occupied - сумма занятых мест по обеим сторонам
func (s *StraferGruntGroup) Occupied() int {
	n := 0
	for i := range s.top {
		n += s.top[i] + s.bottom[i]
	}
	return n
}

// IsFull - заняты все места в рядах
func (s *StraferGruntGroup) IsFull() bool {
	return s.Occupied() >= s.GruntsPerRow*s.MaxRows
}

// SpawnDirection - сторона появления: противоположная половине экрана, где находится игрок.
func (s *StraferGruntGroup) SpawnDirection() int {
	if p := s.world.Player; p != nil && p.VerticalHalf() == stats.HalfTop {
		return entity.SpawnFromBottom
	}
	return entity.SpawnFromTop
}

// CreateNewGrunt ставит нового гранта в первый ряд со свободным местом.
// Возвращает false, если на нужной стороне все ряды заняты.
func (s *StraferGruntGroup) CreateNewGrunt() (*entity.StraferGrunt, bool) {
	direction := s.SpawnDirection()
	rows := s.occupancy(direction)
	row := -1
	for i, n := range rows {
		if n < s.GruntsPerRow {
			row = i
			break
		}
	}
	if row < 0 {
		return nil, false
	}

	w := s.world
	wp, err := entity.NewWeapon(w, s.weaponConfig())
	if err != nil {
		log.Printf("Error: strafer weapon: %v", err)
		return nil, false
	}
	g := entity.NewStraferGrunt(w, s.def, entity.StraferConfig{
		Weapon:         wp,
		Health:         s.Health(),
		Row:            row,
		SpawnDirection: direction,
	})

	depth := s.tuning.RowStart + float64(row)*g.Bounds().H*s.tuning.RowSpacing
	if direction == entity.SpawnFromBottom {
		depth = w.Screen.H - depth
	}
	g.SetStoppingPoint(depth)

	rows[row]++
	w.AllEnemies.Add(g)
	w.Strafers.Add(g)
	return g, true
}

func (s *StraferGruntGroup) weaponConfig() entity.WeaponConfig {
	t := s.tuning
	minROF, maxROF := t.MinRateOfFire, t.MaxRateOfFire
	if s.world.Settings.EasyMode {
		minROF, maxROF = t.EasyMinRateOfFire, t.EasyMaxRateOfFire
	}
	rng := s.world.Rng
	return entity.WeaponConfig{
		Projectile: defs.QuarterRest,
		Ammo:       entity.InfiniteAmmo,
		Damage:     straferShotDamage,
		Speed:      float64(rng.IntRange(t.MinShotSpeed, t.MaxShotSpeed)),
		RateOfFire: float64(rng.IntRange(minROF, maxROF)),
		Scale:      straferShotScale,
		Target:     s.world.EnemyProjectiles,
	}
}

// release освобождает место в ряду ушедшего гранта.
func (s *StraferGruntGroup) release(e entity.Entity) {
	g, ok := e.(*entity.StraferGrunt)
	if !ok || g.Row < 0 {
		return
	}
	rows := s.occupancy(g.SpawnDirection)
	if g.Row < len(rows) && rows[g.Row] > 0 {
		rows[g.Row]--
	}
	g.Row = -1
}

// Health - здоровье следующего гранта с учетом надбавки сложности
func (s *StraferGruntGroup) Health() int {
	return max(s.tuning.MinHealth, s.def.Health+s.HealthTier*s.tuning.HealthIncrement)
}

// ChangeMaxRows меняет число рядов. Ряды добавляются и убираются только с конца;
// грантам из убранных рядов номер ряда сбрасывается.
func (s *StraferGruntGroup) ChangeMaxRows(delta int) bool {
	rows := utils.Clamp(s.MaxRows+delta, 1, s.tuning.MaxRows)
	if rows == s.MaxRows {
		return false
	}
	if rows > s.MaxRows {
		grow := make([]int, rows-s.MaxRows)
		s.top = append(s.top, grow...)
		s.bottom = append(s.bottom, grow...)
	} else {
		for _, e := range s.world.Strafers.Snapshot() {
			if g, ok := e.(*entity.StraferGrunt); ok && g.Row >= rows {
				g.Row = -1
			}
		}
		s.top = s.top[:rows:rows]
		s.bottom = s.bottom[:rows:rows]
	}
	s.MaxRows = rows
	return true
}

// ChangeGruntsPerRow меняет вместимость ряда в пределах настроек.
func (s *StraferGruntGroup) ChangeGruntsPerRow(delta int) bool {
	n := utils.Clamp(s.GruntsPerRow+delta, s.tuning.MinGruntsPerRow, s.tuning.MaxGruntsPerRow)
	if n == s.GruntsPerRow {
		return false
	}
	s.GruntsPerRow = n
	return true
}

// ChangeGruntHealth меняет надбавку здоровья для следующих грантов.
// Надбавка не уменьшается, если здоровье уже на минимуме; сверху она не ограничена.
func (s *StraferGruntGroup) ChangeGruntHealth(delta int) bool {
	if delta < 0 && s.Health() <= s.tuning.MinHealth {
		return false
	}
	s.HealthTier += delta
	return true
}

// ChangeSpawnTimer: +1 ускоряет появление, -1 замедляет.
func (s *StraferGruntGroup) ChangeSpawnTimer(delta int) bool {
	next := utils.Clamp(s.SpawnInterval-float64(delta*s.tuning.TimerIncrement), float64(s.tuning.MinTimer), float64(s.tuning.MaxTimer))
	if next == s.SpawnInterval {
		return false
	}
	s.SpawnInterval = next
	if s.timers != nil {
		s.timers.SetInterval(event.SpawnStraferGrunt, next)
	}
	return true
}
