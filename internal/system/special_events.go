// internal/system/special_events.go
package system

import (
	"fmt"
	"log"

	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/types"
	"hyperlydian/pkg/utils"
)

// SpecialEvent - одно особое событие. Завершение определяет само событие:
// по счетчику оставшихся врагов или по прошедшему времени.
type SpecialEvent interface {
	Name() string
	Start() error
	Update(dtMs float64)
	Finished() bool
	End()
}

// EventState - состояние планировщика
type EventState int

const (
	EventIdle EventState = iota
	EventQueued
	EventInProgress
)

func (s EventState) String() string {
	switch s {
	case EventQueued:
		return "queued"
	case EventInProgress:
		return "in_progress"
	}
	return "idle"
}

// SpecialEventManager ставит особые события в очередь из одного места и ведет их
// строго по одному: Idle -> Queued -> InProgress -> Idle.
type SpecialEventManager struct {
	world    *entity.World
	timers   *event.TimerBus
	spinners *SpinnerGruntGroup

	queue   []SpecialEvent
	current SpecialEvent

	EventCount      int
	EnemiesPerEvent int
	standardSpawned int
}

func NewSpecialEventManager(w *entity.World, timers *event.TimerBus, spinners *SpinnerGruntGroup) *SpecialEventManager {
	return &SpecialEventManager{
		world:           w,
		timers:          timers,
		spinners:        spinners,
		EnemiesPerEvent: defs.EventSchedule.StandardEnemiesPerEvent,
	}
}

func (m *SpecialEventManager) State() EventState {
	switch {
	case m.current != nil:
		return EventInProgress
	case len(m.queue) > 0:
		return EventQueued
	}
	return EventIdle
}

func (m *SpecialEventManager) EventQueued() bool     { return len(m.queue) > 0 }
func (m *SpecialEventManager) EventInProgress() bool { return m.current != nil }

// Current - идущее событие или nil
func (m *SpecialEventManager) Current() SpecialEvent {
	return m.current
}

// CountStandardSpawn учитывает появление обычного врага.
func (m *SpecialEventManager) CountStandardSpawn() {
	m.standardSpawned++
}

// ShouldQueue - с прошлого события появилось достаточно обычных врагов.
func (m *SpecialEventManager) ShouldQueue() bool {
	return m.State() == EventIdle && m.standardSpawned >= m.EnemiesPerEvent
}

// QueueEvent выбирает событие по весам и ставит его в очередь.
// Возвращает false, если событие уже ждет или идет.
func (m *SpecialEventManager) QueueEvent() bool {
	if m.State() != EventIdle {
		return false
	}
	weights := make([]int, len(defs.SpecialEventDefs))
	for i, d := range defs.SpecialEventDefs {
		weights[i] = d.Weight
	}
	def := defs.SpecialEventDefs[m.world.Rng.ChooseWeighted(weights)]
	ev, err := m.build(def)
	if err != nil {
		log.Printf("Error: %v", err)
		return false
	}
	m.EventCount++
	m.queue = append(m.queue, ev)
	log.Printf("Special event #%d queued: %s", m.EventCount, ev.Name())
	return true
}

// Enqueue ставит в очередь заданное событие.
func (m *SpecialEventManager) Enqueue(ev SpecialEvent) bool {
	if m.State() != EventIdle {
		return false
	}
	m.EventCount++
	m.queue = append(m.queue, ev)
	return true
}

func (m *SpecialEventManager) build(def defs.SpecialEventDefinition) (SpecialEvent, error) {
	switch def.ID {
	case defs.SpinnerGruntSwarm:
		return NewSpinnerGruntSwarm(m.spinners), nil
	case defs.BulletBurst:
		return NewBulletBurst(m.world, m.spinners, def.DurationMs), nil
	case defs.FallingHazardField:
		return NewFallingHazardField(m.world, m.timers, def.DurationMs), nil
	}
	return nil, fmt.Errorf("%w: special event %q", defs.ErrUnknownDefinition, def.ID)
}

// StartEvent запускает событие из очереди. Пустая очередь - ошибка программиста.
func (m *SpecialEventManager) StartEvent() error {
	if len(m.queue) == 0 {
		types.Precondition("SpecialEventManager.StartEvent", "no special event queued")
	}
	if m.current != nil {
		types.Precondition("SpecialEventManager.StartEvent", "event %s is still in progress", m.current.Name())
	}
	ev := m.queue[0]
	m.queue = m.queue[1:]
	m.current = ev
	if err := ev.Start(); err != nil {
		return fmt.Errorf("failed to start special event %s: %w", ev.Name(), err)
	}
	m.world.Stats.Add(stats.EventsStarted, 1)
	m.world.Stats.Update(stats.EventsInProgress, 1)
	log.Printf("Special event started: %s", ev.Name())
	return nil
}

// Update продвигает идущее событие.
func (m *SpecialEventManager) Update(dtMs float64) {
	if m.current != nil {
		m.current.Update(dtMs)
	}
}

// EventIsFinished - идущее событие выполнило свое условие завершения.
func (m *SpecialEventManager) EventIsFinished() bool {
	return m.current != nil && m.current.Finished()
}

// EndEvent завершает событие и просит убрать оставшиеся сущности события.
func (m *SpecialEventManager) EndEvent() {
	if m.current == nil {
		types.Precondition("SpecialEventManager.EndEvent", "no special event in progress")
	}
	ev := m.current
	m.current = nil
	m.standardSpawned = 0
	// сущности события убираются, даже если End упал
	defer func() {
		w := m.world
		w.Stats.Update(stats.EventsInProgress, 0)
		if w.Dispatcher != nil {
			w.Dispatcher.Dispatch(event.Event{Type: event.FadeOutEventEntities})
			w.Dispatcher.Dispatch(event.Event{Type: event.SpecialEventEnded, Data: ev.Name()})
		}
		log.Printf("Special event ended: %s", ev.Name())
	}()
	ev.End()
}

// Reset сбрасывает очередь и текущее событие без вызова их хуков.
func (m *SpecialEventManager) Reset() {
	m.queue = nil
	m.current = nil
	m.standardSpawned = 0
}

// ChangeEnemiesPerEvent: +1 - события чаще, -1 - реже.
func (m *SpecialEventManager) ChangeEnemiesPerEvent(delta int) bool {
	t := defs.EventSchedule
	n := utils.Clamp(m.EnemiesPerEvent-delta*t.EnemiesPerEventStep, t.MinEnemiesPerEvent, t.MaxEnemiesPerEvent)
	if n == m.EnemiesPerEvent {
		return false
	}
	m.EnemiesPerEvent = n
	return true
}
