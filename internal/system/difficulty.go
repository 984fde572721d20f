// internal/system/difficulty.go
package system

import (
	"fmt"
	"log"

	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
)

// Knob - одна ручка сложности. Apply получает +1 (сложнее) или -1 (легче)
// и возвращает false, если значение уже на границе.
type Knob struct {
	Name  string
	Apply func(delta int) bool
}

// Adjustment - запись об одном срабатывании контроллера.
type Adjustment struct {
	Ratchet string
	Knob    string
	Delta   int
	Applied bool
}

// ratchet считает убийства или события с последнего срабатывания.
// Порог растет с каждым срабатыванием: (fired+1)*base + fired*inc.
type ratchet struct {
	name  string
	count int
	fired int
	base  int
	inc   int
	knobs []Knob
}

func (r *ratchet) threshold() int {
	return (r.fired+1)*r.base + r.fired*r.inc
}

// DifficultySystem подкручивает параметры спавна по мере убийств и особых событий.
// Направление решает бросок против текущего здоровья игрока.
type DifficultySystem struct {
	world    *entity.World
	standard ratchet
	special  ratchet
	history  []Adjustment
}

func NewDifficultySystem(w *entity.World, d *event.Dispatcher, standard, special []Knob) *DifficultySystem {
	tuning := defs.Difficulty
	s := &DifficultySystem{
		world:    w,
		standard: ratchet{name: "standard", base: tuning.KillBase, inc: tuning.KillIncrement, knobs: standard},
		special:  ratchet{name: "special", base: tuning.EventBase, inc: tuning.EventIncrement, knobs: special},
	}
	if d != nil {
		d.Subscribe(event.EnemyKilled, s)
		d.Subscribe(event.SpecialEventEnded, s)
	}
	return s
}

func (s *DifficultySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.SpecialEvent {
			return
		}
		s.count(&s.standard)
	case event.SpecialEventEnded:
		s.count(&s.special)
	}
}

func (s *DifficultySystem) count(r *ratchet) {
	r.count++
	if r.count < r.threshold() {
		return
	}
	r.count = 0
	s.fire(r)
}

// fire выбирает ручку и направление. Счетчик срабатываний растет всегда,
// даже если бросок совпал со здоровьем и ничего не изменилось.
func (s *DifficultySystem) fire(r *ratchet) {
	defer func() { r.fired++ }()
	if len(r.knobs) == 0 {
		return
	}
	knob := r.knobs[s.world.Rng.Intn(len(r.knobs))]
	delta := s.roll()
	adj := Adjustment{Ratchet: r.name, Knob: knob.Name, Delta: delta}
	if delta != 0 {
		adj.Applied = knob.Apply(delta)
	}
	s.history = append(s.history, adj)
	s.world.Stats.Increase("difficulty/"+r.name, fmt.Sprintf("%s%+d", knob.Name, delta))
	log.Printf("Difficulty %s #%d: %s %+d (applied: %v)", r.name, r.fired+1, knob.Name, delta, adj.Applied)
}

// roll бросает r в [0, max здоровья): r < здоровья - сложнее, r > здоровья - легче.
func (s *DifficultySystem) roll() int {
	p := s.world.Player
	if p == nil || p.MaxHealth() <= 0 {
		return 0
	}
	r := s.world.Rng.Intn(p.MaxHealth())
	hp := p.Health()
	switch {
	case r < hp:
		return 1
	case r > hp:
		return -1
	}
	return 0
}

// History возвращает все срабатывания с начала прохождения.
func (s *DifficultySystem) History() []Adjustment {
	return append([]Adjustment(nil), s.history...)
}

// Thresholds - текущие пороги обоих счетчиков
func (s *DifficultySystem) Thresholds() (standard, special int) {
	return s.standard.threshold(), s.special.threshold()
}
