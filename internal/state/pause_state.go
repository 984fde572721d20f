// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hyperlydian/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm      *StateMachine
	game    *GameState
	overlay *ui.PauseOverlay
}

func NewPauseState(sm *StateMachine, gs *GameState) *PauseState {
	return &PauseState{sm: sm, game: gs, overlay: ui.NewPauseOverlay(24)}
}

func (s *PauseState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (s *PauseState) Update(deltaTime float64) error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.sm.SetState(s.game)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.game.Quit()
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	s.overlay.Draw(screen)
}

func (s *PauseState) Exit() {}
