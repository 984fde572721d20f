// internal/system/event_variants.go
package system

import (
	"log"

	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/utils"
)

// SpinnerGruntSwarm - кольцо SpinnerGrunt вокруг центра экрана, все смотрят в центр.
// Завершается, когда убиты все гранты роя.
type SpinnerGruntSwarm struct {
	spinners  *SpinnerGruntGroup
	Remaining int
}

func NewSpinnerGruntSwarm(spinners *SpinnerGruntGroup) *SpinnerGruntSwarm {
	return &SpinnerGruntSwarm{spinners: spinners}
}

func (e *SpinnerGruntSwarm) Name() string { return defs.SpinnerGruntSwarm }

func (e *SpinnerGruntSwarm) Start() error {
	n := e.spinners.GruntsPerEllipse
	points := e.spinners.OvalStartingPositions(n)
	angles := e.spinners.RotationAnglesFromStartPositions(points)
	for i := range points {
		if _, err := e.spinners.CreateNewGrunt(SpinnerSpawn{
			Spawn:     &points[i],
			Rotation:  &angles[i],
			Callbacks: []func(){e.gruntKilled},
			Special:   true,
		}); err != nil {
			return err
		}
		e.Remaining++
	}
	return nil
}

func (e *SpinnerGruntSwarm) gruntKilled() { e.Remaining-- }

func (e *SpinnerGruntSwarm) Update(float64) {}

func (e *SpinnerGruntSwarm) Finished() bool { return e.Remaining <= 0 }

func (e *SpinnerGruntSwarm) End() {}

// Залп BulletBurst: четыре ствола поперек направления стрельбы
var burstMuzzles = [][2]float64{{0, -36}, {0, -12}, {0, 12}, {0, 36}}

// BulletBurst - два особых SpinnerGrunt у левого и правого краев, стреляющих
// из четырех стволов. Завершается по времени или когда оба убиты.
type BulletBurst struct {
	world    *entity.World
	spinners *SpinnerGruntGroup
	Duration float64 // мс
	Elapsed  float64
	Alive    int
}

func NewBulletBurst(w *entity.World, spinners *SpinnerGruntGroup, durationMs float64) *BulletBurst {
	return &BulletBurst{world: w, spinners: spinners, Duration: durationMs}
}

func (e *BulletBurst) Name() string { return defs.BulletBurst }

func (e *BulletBurst) Start() error {
	s := e.world.Screen
	offset := float64(defs.SpinnerGroup.ScreenBuffer) * 2
	spots := []utils.Point{{X: offset, Y: s.H / 2}, {X: s.W - offset, Y: s.H / 2}}
	for i := range spots {
		if _, err := e.spinners.CreateNewGrunt(SpinnerSpawn{
			Spawn:     &spots[i],
			Callbacks: []func(){func() { e.Alive-- }},
			Special:   true,
			Muzzles:   burstMuzzles,
		}); err != nil {
			return err
		}
		e.Alive++
	}
	return nil
}

func (e *BulletBurst) Update(dtMs float64) { e.Elapsed += dtMs }

func (e *BulletBurst) Finished() bool {
	return e.Alive <= 0 || e.Elapsed >= e.Duration
}

func (e *BulletBurst) End() {}

// FallingHazardField - предупреждающие полосы по краям, затем поток падающих букв.
// На время события фоновые ноты выключены. Завершается по времени.
type FallingHazardField struct {
	world    *entity.World
	timers   *event.TimerBus
	Duration float64 // мс
	Elapsed  float64
	barsLeft int
	Raining  bool
}

func NewFallingHazardField(w *entity.World, timers *event.TimerBus, durationMs float64) *FallingHazardField {
	return &FallingHazardField{world: w, timers: timers, Duration: durationMs}
}

func (e *FallingHazardField) Name() string { return defs.FallingHazardField }

func (e *FallingHazardField) Start() error {
	w := e.world
	if e.timers != nil {
		e.timers.Disable(event.AddNote)
		e.timers.Set(event.AddHazard, config.HazardSpawnInterval)
		e.timers.Disable(event.AddHazard)
	}
	if w.Dispatcher != nil {
		w.Dispatcher.Subscribe(event.AddHazard, e)
	}
	for _, side := range defs.AllSides {
		bar, err := entity.NewSideBar(w, side, e.barExpired)
		if err != nil {
			return err
		}
		w.Indicators.Add(bar)
		e.barsLeft++
	}
	return nil
}

// barExpired включает поток букв, когда исчезает последняя полоса.
func (e *FallingHazardField) barExpired() {
	e.barsLeft--
	if e.barsLeft > 0 {
		return
	}
	e.Raining = true
	if e.timers != nil {
		e.timers.Enable(event.AddHazard)
	}
	log.Println("Hazard field: letters incoming")
}

func (e *FallingHazardField) OnEvent(ev event.Event) {
	if ev.Type != event.AddHazard || !e.Raining {
		return
	}
	w := e.world
	h := entity.NewHazard(w)
	w.Hazards.Add(h)
}

func (e *FallingHazardField) Update(dtMs float64) { e.Elapsed += dtMs }

func (e *FallingHazardField) Finished() bool { return e.Elapsed >= e.Duration }

func (e *FallingHazardField) End() {
	e.Raining = false
	if e.timers != nil {
		e.timers.Disable(event.AddHazard)
		e.timers.Enable(event.AddNote)
	}
	if d := e.world.Dispatcher; d != nil {
		d.Unsubscribe(event.AddHazard, e)
	}
}
