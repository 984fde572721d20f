// internal/event/timer.go
package event

import "log"

type timer struct {
	name     EventType
	interval float64 // мс; 0 - таймер выключен
	elapsed  float64
	enabled  bool
}

// TimerBus - набор именованных периодических таймеров поверх Dispatcher.
// Сработавший таймер рассылает событие со своим именем.
type TimerBus struct {
	dispatcher *Dispatcher
	timers     []*timer
	byName     map[EventType]*timer
}

func NewTimerBus(dispatcher *Dispatcher) *TimerBus {
	return &TimerBus{
		dispatcher: dispatcher,
		byName:     make(map[EventType]*timer),
	}
}

// Set заводит таймер с периодом intervalMs и сбрасывает накопленное время.
// Период 0 выключает таймер.
func (b *TimerBus) Set(name EventType, intervalMs float64) {
	t, ok := b.byName[name]
	if !ok {
		t = &timer{name: name}
		b.byName[name] = t
		b.timers = append(b.timers, t)
	}
	t.interval = intervalMs
	t.elapsed = 0
	t.enabled = intervalMs > 0
}

// SetInterval меняет период, не сбрасывая накопленное время.
func (b *TimerBus) SetInterval(name EventType, intervalMs float64) {
	t, ok := b.byName[name]
	if !ok {
		b.Set(name, intervalMs)
		return
	}
	t.interval = intervalMs
	if intervalMs <= 0 {
		t.enabled = false
	}
	log.Printf("Timer %s interval set to %.0f ms", name, intervalMs)
}

func (b *TimerBus) Enable(name EventType) {
	if t, ok := b.byName[name]; ok && t.interval > 0 {
		t.enabled = true
		t.elapsed = 0
	}
}

func (b *TimerBus) Disable(name EventType) {
	if t, ok := b.byName[name]; ok {
		t.enabled = false
	}
}

// Enabled - включен ли таймер
func (b *TimerBus) Enabled(name EventType) bool {
	t, ok := b.byName[name]
	return ok && t.enabled
}

// Interval возвращает текущий период таймера.
func (b *TimerBus) Interval(name EventType) float64 {
	if t, ok := b.byName[name]; ok {
		return t.interval
	}
	return 0
}

// DisableAll выключает все таймеры.
func (b *TimerBus) DisableAll() {
	for _, t := range b.timers {
		t.enabled = false
	}
}

// Update продвигает таймеры на dtMs. Каждый таймер срабатывает не более одного раза
// за обновление, порядок срабатывания совпадает с порядком регистрации.
func (b *TimerBus) Update(dtMs float64) {
	var due []EventType
	for _, t := range b.timers {
		if !t.enabled {
			continue
		}
		t.elapsed += dtMs
		if t.elapsed >= t.interval {
			t.elapsed -= t.interval
			if t.elapsed >= t.interval {
				t.elapsed = 0
			}
			due = append(due, t.name)
		}
	}
	for _, name := range due {
		b.dispatcher.Dispatch(Event{Type: name})
	}
}
