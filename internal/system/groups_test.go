package system

import (
	"testing"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/utils"
)

// stubRandom - предсказуемый источник: Intn возвращает intn % n, Float64 - float.
type stubRandom struct {
	intn   int
	float  float64
	floats int
}

func (r *stubRandom) Intn(n int) int                 { return r.intn % n }
func (r *stubRandom) IntRange(lo, hi int) int        { return lo }
func (r *stubRandom) Float64() float64               { r.floats++; return r.float }
func (r *stubRandom) Uniform(lo, hi float64) float64 { return lo }
func (r *stubRandom) ChooseWeighted(w []int) int     { return utils.PickWeighted(r, w) }

func newTestWorld(rng utils.Random) *entity.World {
	if rng == nil {
		rng = utils.NewPRNGService(11)
	}
	return entity.NewWorld(assets.NewManager(), rng, nil, event.NewDispatcher(), config.Settings{})
}

func assignedStrafers(w *entity.World) int {
	n := 0
	for _, e := range w.Strafers.Snapshot() {
		if g, ok := e.(*entity.StraferGrunt); ok && g.Row >= 0 {
			n++
		}
	}
	return n
}

func checkOccupancy(t *testing.T, w *entity.World, s *StraferGruntGroup) {
	t.Helper()
	if got, want := s.Occupied(), assignedStrafers(w); got != want {
		t.Errorf("Expected occupancy %d to match live row-assigned grunts, got %d", want, got)
	}
}

func TestStraferOccupancyMatchesLiveGrunts(t *testing.T) {
	w := newTestWorld(nil)
	s := NewStraferGruntGroup(w, event.NewTimerBus(w.Dispatcher))

	var grunts []*entity.StraferGrunt
	for {
		g, ok := s.CreateNewGrunt()
		if !ok {
			break
		}
		grunts = append(grunts, g)
		checkOccupancy(t, w, s)
	}
	if len(grunts) != s.MaxRows*s.GruntsPerRow {
		t.Fatalf("Expected %d grunts before the rows fill, got %d", s.MaxRows*s.GruntsPerRow, len(grunts))
	}
	if !s.IsFull() {
		t.Error("Expected group to be full")
	}

	grunts[0].TakeDamage(1000)
	grunts[0].Die()
	grunts[4].Kill()
	checkOccupancy(t, w, s)
	if s.IsFull() {
		t.Error("Expected free places after two grunts left")
	}

	s.ChangeMaxRows(-1)
	checkOccupancy(t, w, s)
	s.ChangeMaxRows(1)
	checkOccupancy(t, w, s)
	for _, g := range grunts {
		g.Kill()
	}
	checkOccupancy(t, w, s)
	if s.Occupied() != 0 {
		t.Errorf("Expected empty rows, got %d", s.Occupied())
	}
}

func TestStraferRowsFillLowToHigh(t *testing.T) {
	w := newTestWorld(nil)
	s := NewStraferGruntGroup(w, nil)
	tuning := defs.StraferGroup

	var rows []int
	var depths []float64
	for i := 0; i < s.GruntsPerRow+1; i++ {
		g, ok := s.CreateNewGrunt()
		if !ok {
			t.Fatal("Expected a free row")
		}
		rows = append(rows, g.Row)
		depths = append(depths, g.StoppingPoint())
	}
	for i := 0; i < s.GruntsPerRow; i++ {
		if rows[i] != 0 || depths[i] != tuning.RowStart {
			t.Errorf("Expected grunt %d in row 0 at %v, got row %d at %v", i, tuning.RowStart, rows[i], depths[i])
		}
	}
	if last := rows[len(rows)-1]; last != 1 {
		t.Errorf("Expected overflow into row 1, got %d", last)
	}
	if depths[len(depths)-1] <= tuning.RowStart {
		t.Errorf("Expected row 1 deeper than row 0, got %v", depths[len(depths)-1])
	}
}

func TestStraferSpawnsOppositePlayerHalf(t *testing.T) {
	w := newTestWorld(nil)
	p, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	s := NewStraferGruntGroup(w, nil)

	p.Pos.Y = 100
	g, _ := s.CreateNewGrunt()
	if g.SpawnDirection != entity.SpawnFromBottom {
		t.Errorf("Expected spawn from the bottom, got %d", g.SpawnDirection)
	}
	if want := w.Screen.H - defs.StraferGroup.RowStart; g.StoppingPoint() != want {
		t.Errorf("Expected mirrored depth %v, got %v", want, g.StoppingPoint())
	}

	p.Pos.Y = w.Screen.H - 100
	g, _ = s.CreateNewGrunt()
	if g.SpawnDirection != entity.SpawnFromTop {
		t.Errorf("Expected spawn from the top, got %d", g.SpawnDirection)
	}
	if got := s.Occupancy(entity.SpawnFromBottom)[0]; got != 1 {
		t.Errorf("Expected one grunt in bottom row 0, got %d", got)
	}
}

func TestStraferKnobsClamp(t *testing.T) {
	w := newTestWorld(nil)
	timers := event.NewTimerBus(w.Dispatcher)
	s := NewStraferGruntGroup(w, timers)
	tuning := defs.StraferGroup

	for i := 0; i < 10; i++ {
		s.ChangeMaxRows(1)
		s.ChangeGruntsPerRow(1)
		s.ChangeSpawnTimer(1)
	}
	if s.MaxRows != tuning.MaxRows || s.GruntsPerRow != tuning.MaxGruntsPerRow {
		t.Errorf("Expected %d rows of %d, got %d of %d", tuning.MaxRows, tuning.MaxGruntsPerRow, s.MaxRows, s.GruntsPerRow)
	}
	if len(s.Occupancy(entity.SpawnFromTop)) != tuning.MaxRows {
		t.Errorf("Expected occupancy sized %d, got %d", tuning.MaxRows, len(s.Occupancy(entity.SpawnFromTop)))
	}
	if got := timers.Interval(event.SpawnStraferGrunt); got != float64(tuning.MinTimer) {
		t.Errorf("Expected spawn timer %d, got %v", tuning.MinTimer, got)
	}
	for i := 0; i < 10; i++ {
		s.ChangeMaxRows(-1)
		s.ChangeGruntHealth(-1)
	}
	if s.MaxRows != 1 {
		t.Errorf("Expected 1 row, got %d", s.MaxRows)
	}
	if s.Health() != tuning.MinHealth {
		t.Errorf("Expected health floored at %d, got %d", tuning.MinHealth, s.Health())
	}
}

func TestSpinnerKnobDirections(t *testing.T) {
	w := newTestWorld(nil)
	timers := event.NewTimerBus(w.Dispatcher)
	s := NewSpinnerGruntGroup(w, timers)
	tuning := defs.SpinnerGroup

	if !s.ChangeSpawnTimer(1) {
		t.Fatal("Expected the spawn timer to change")
	}
	if want := float64(tuning.InitialTimer - tuning.TimerIncrement); timers.Interval(event.SpawnSpinnerGrunt) != want {
		t.Errorf("Expected harder step to shorten the interval to %v, got %v", want, timers.Interval(event.SpawnSpinnerGrunt))
	}

	base := s.Health()
	for i := 0; i < 50; i++ {
		s.ChangeGruntHealth(1)
	}
	if want := base + 50*tuning.HealthIncrement; s.Health() != want {
		t.Errorf("Expected uncapped health %d, got %d", want, s.Health())
	}
}

func TestSpinnerIsFull(t *testing.T) {
	w := newTestWorld(nil)
	s := NewSpinnerGruntGroup(w, nil)
	s.MaxGrunts = 2

	a, err := s.CreateNewGrunt(SpinnerSpawn{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.IsFull() {
		t.Error("Expected group with 1 of 2 grunts not to be full")
	}
	if _, err := s.CreateNewGrunt(SpinnerSpawn{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.IsFull() {
		t.Error("Expected group with 2 of 2 grunts to be full")
	}
	if _, err := s.CreateNewGrunt(SpinnerSpawn{Special: true}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.OnScreen() != 2 {
		t.Errorf("Expected special grunts outside the counter, got %d", s.OnScreen())
	}
	a.Kill()
	if s.IsFull() || s.OnScreen() != 1 {
		t.Errorf("Expected 1 grunt on screen after a kill, got %d", s.OnScreen())
	}
}

func TestSpinnerExplicitSpawnAcceptedAsIs(t *testing.T) {
	w := newTestWorld(nil)
	s := NewSpinnerGruntGroup(w, nil)
	spot := utils.Point{X: 400, Y: 300}
	for i := 0; i < 2; i++ {
		g, err := s.CreateNewGrunt(SpinnerSpawn{Spawn: &spot})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if g.StoppingX != spot.X || g.Pos.Y != spot.Y {
			t.Errorf("Expected stop at %v, got (%v, %v)", spot, g.StoppingX, g.Pos.Y)
		}
	}
}

func TestSpinnerRandomSpawnsAvoidOverlap(t *testing.T) {
	w := newTestWorld(nil)
	s := NewSpinnerGruntGroup(w, nil)
	var grunts []*entity.SpinnerGrunt
	for i := 0; i < 4; i++ {
		g, err := s.CreateNewGrunt(SpinnerSpawn{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		grunts = append(grunts, g)
	}
	for i := range grunts {
		for j := i + 1; j < len(grunts); j++ {
			a, b := grunts[i].Bounds(), grunts[j].Bounds()
			if a.Overlaps(b) {
				t.Errorf("Expected grunts %d and %d not to overlap", i, j)
			}
		}
	}
}

func TestHealthUpgradeSmallDropBaseline(t *testing.T) {
	rng := &stubRandom{float: 0}
	w := newTestWorld(rng)
	g := NewHealthUpgradeGroup(w)

	rolls := make([]int, 11)
	for kill := 1; kill <= 10; kill++ {
		w.Kills = kill
		before := rng.floats
		g.CreateOnProbability(100, 100)
		rolls[kill] = rng.floats - before
	}
	for kill := 1; kill <= 10; kill++ {
		want := 0
		if kill == 6 {
			want = 1
		}
		if rolls[kill] != want {
			t.Errorf("Expected %d rolls on kill %d, got %d", want, kill, rolls[kill])
		}
	}
	if g.BaseForSmall != 6 {
		t.Errorf("Expected small baseline 6, got %d", g.BaseForSmall)
	}
	if w.Upgrades.Len() != 1 {
		t.Errorf("Expected one dropped upgrade, got %d", w.Upgrades.Len())
	}
}

func TestHealthUpgradeMaxDropIsExclusive(t *testing.T) {
	tests := []struct {
		name      string
		roll      float64
		wantRolls int
		wantDef   string
	}{
		{"max drop skips small", 0, 1, defs.MaxHealth},
		{"failed max still rolls small", 0.3, 2, defs.SmallHealth},
		{"nothing drops", 0.9, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &stubRandom{float: tt.roll}
			w := newTestWorld(rng)
			g := NewHealthUpgradeGroup(w)
			w.Kills = 21

			u := g.CreateOnProbability(100, 100)
			if rng.floats != tt.wantRolls {
				t.Errorf("Expected %d rolls, got %d", tt.wantRolls, rng.floats)
			}
			got := ""
			if u != nil {
				got = u.Def.ID
			}
			if got != tt.wantDef {
				t.Errorf("Expected drop %q, got %q", tt.wantDef, got)
			}
		})
	}
}
