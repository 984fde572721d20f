// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hyperlydian/internal/config"
	"hyperlydian/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог прохождения до нажатия Enter.
type GameOverState struct {
	sm    *StateMachine
	lines []string
}

func NewGameOverState(sm *StateMachine, lines []string) *GameOverState {
	return &GameOverState{sm: sm, lines: lines}
}

func (s *GameOverState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (s *GameOverState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, ""))
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	y := config.ScreenHeight/2 - 80
	ui.DrawCenteredText(screen, "GAME OVER", cx, y, config.WarningColor)
	for i, l := range s.lines {
		ui.DrawCenteredText(screen, l, cx, y+40+i*20, config.TextLightColor)
	}
	ui.DrawCenteredText(screen, "Press Enter to return to the menu", cx, y+60+len(s.lines)*20, config.TextDimColor)
}

func (s *GameOverState) Exit() {}
