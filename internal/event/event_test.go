package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerDeath, r)
	d.Dispatch(Event{Type: PlayerDeath})
	d.Unsubscribe(PlayerDeath, r)
	d.Dispatch(Event{Type: PlayerDeath})
	if len(r.got) != 1 {
		t.Errorf("Expected 1 event, got %d", len(r.got))
	}
}

func TestTimerBusFiresPeriodically(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(AddStaff, r)
	bus := NewTimerBus(d)
	bus.Set(AddStaff, 100)

	for i := 0; i < 10; i++ {
		bus.Update(25)
	}
	if len(r.got) != 2 {
		t.Errorf("Expected 2 firings in 250 ms, got %d", len(r.got))
	}
}

func TestTimerBusFiresOncePerUpdate(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(AddNote, r)
	bus := NewTimerBus(d)
	bus.Set(AddNote, 50)

	bus.Update(500)
	if len(r.got) != 1 {
		t.Errorf("Expected a single firing for a long frame, got %d", len(r.got))
	}
}

func TestTimerBusDisableAndRetarget(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(SpawnStraferGrunt, r)
	bus := NewTimerBus(d)
	bus.Set(SpawnStraferGrunt, 2000)

	bus.Disable(SpawnStraferGrunt)
	bus.Update(5000)
	if len(r.got) != 0 {
		t.Errorf("Expected disabled timer to stay silent, got %d firings", len(r.got))
	}

	bus.Enable(SpawnStraferGrunt)
	bus.SetInterval(SpawnStraferGrunt, 500)
	bus.Update(500)
	if len(r.got) != 1 {
		t.Errorf("Expected retargeted timer to fire, got %d firings", len(r.got))
	}
	if bus.Interval(SpawnStraferGrunt) != 500 {
		t.Errorf("Expected interval 500, got %v", bus.Interval(SpawnStraferGrunt))
	}

	bus.Set(SpawnStraferGrunt, 0)
	if bus.Enabled(SpawnStraferGrunt) {
		t.Errorf("Expected zero interval to disable the timer")
	}
}
