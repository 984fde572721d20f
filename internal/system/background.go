// internal/system/background.go
package system

import (
	"hyperlydian/internal/config"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
)

// BackgroundSystem создает фоновые ноты и нотные станы по таймерам.
type BackgroundSystem struct {
	world *entity.World
}

func NewBackgroundSystem(w *entity.World, timers *event.TimerBus) *BackgroundSystem {
	s := &BackgroundSystem{world: w}
	if w.Dispatcher != nil {
		w.Dispatcher.Subscribe(event.AddNote, s)
		w.Dispatcher.Subscribe(event.AddStaff, s)
	}
	if timers != nil {
		timers.Set(event.AddNote, config.NoteSpawnInterval)
		timers.Set(event.AddStaff, config.StaffSpawnInterval)
	}
	return s
}

// Populate рассыпает ноты по экрану при загрузке.
func (s *BackgroundSystem) Populate() {
	for i := 0; i < entity.NotesOnLoad; i++ {
		s.world.Notes.Add(entity.NewNote(s.world, true))
	}
}

func (s *BackgroundSystem) OnEvent(e event.Event) {
	w := s.world
	switch e.Type {
	case event.AddNote:
		for i := 0; i < entity.NotesPerEvent; i++ {
			w.Notes.Add(entity.NewNote(w, false))
		}
	case event.AddStaff:
		w.Staff.Add(entity.NewStaff(w))
	}
}
