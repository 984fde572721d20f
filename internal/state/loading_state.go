// internal/state/loading_state.go
package state

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hyperlydian/internal/config"
	"hyperlydian/internal/ui"
)

var _ State = (*LoadingState)(nil)

// LoadingState ждет, пока внешнее аудио-приложение сообщит о загрузке.
// По таймауту игра продолжается без звука после подтверждения игрока.
type LoadingState struct {
	sm      *StateMachine
	elapsed float64
}

func NewLoadingState(sm *StateMachine) *LoadingState {
	return &LoadingState{sm: sm}
}

func (s *LoadingState) Enter() {}

func (s *LoadingState) Update(deltaTime float64) error {
	s.elapsed += deltaTime
	link := s.sm.Ctx.Link
	if link == nil || link.Ready() {
		s.sm.SetState(NewMenuState(s.sm, ""))
		return nil
	}
	if link.TimedOut() && (inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		s.sm.SetState(NewMenuState(s.sm, "Audio unavailable"))
	}
	return nil
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	link := s.sm.Ctx.Link
	if link != nil && link.TimedOut() {
		ui.DrawCenteredText(screen, "The audio application did not respond.", cx, cy, config.WarningColor)
		ui.DrawCenteredText(screen, "Press Enter to play without sound.", cx, cy+20, config.TextDimColor)
		return
	}
	msg := "Opening audio"
	if link != nil && link.Opened() {
		msg = "Loading audio"
	}
	dots := strings.Repeat(".", int(s.elapsed*2)%4)
	ui.DrawCenteredText(screen, msg+dots, cx, cy, config.TextLightColor)
}

func (s *LoadingState) Exit() {}
