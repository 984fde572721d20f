// internal/state/menu_state.go
package state

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hyperlydian/internal/config"
	"hyperlydian/internal/ui"
)

const (
	menuButtonWidth  = 360
	menuButtonHeight = 50
	menuButtonGap    = 20
	menuTop          = 340
)

var _ State = (*MenuState)(nil)

// MenuState - главное меню: Play, Easy Mode, Player Invincible, Quit
type MenuState struct {
	sm       *StateMachine
	buttons  []*ui.MenuButton
	selected int
	message  string
}

// NewMenuState создает меню. message показывается под заголовком (например, причина выхода из игры).
func NewMenuState(sm *StateMachine, message string) *MenuState {
	m := &MenuState{sm: sm, message: message}
	s := &sm.Ctx.Settings
	labels := []struct {
		text   string
		toggle *bool
	}{
		{"Play", nil},
		{"Easy Mode", &s.EasyMode},
		{"Player Invincible", &s.PlayerInvincible},
		{"Quit", nil},
	}
	x := (config.ScreenWidth - menuButtonWidth) / 2
	for i, l := range labels {
		y := menuTop + i*(menuButtonHeight+menuButtonGap)
		rect := image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight)
		m.buttons = append(m.buttons, ui.NewMenuButton(rect, l.text, l.toggle))
	}
	return m
}

func (m *MenuState) Enter() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.selected = (m.selected + 1) % len(m.buttons)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.selected = (m.selected + len(m.buttons) - 1) % len(m.buttons)
	}

	mx, my := ebiten.CursorPosition()
	for i, b := range m.buttons {
		if b.Contains(mx, my) {
			m.selected = i
			if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
				return m.activate(i)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return m.activate(m.selected)
	}
	return nil
}

func (m *MenuState) activate(i int) error {
	b := m.buttons[i]
	if b.Toggle != nil {
		*b.Toggle = !*b.Toggle
		m.saveSettings()
		return nil
	}
	switch b.Text {
	case "Play":
		m.sm.SetState(NewGameState(m.sm))
	case "Quit":
		log.Println("Quit from menu")
		return ebiten.Termination
	}
	return nil
}

func (m *MenuState) saveSettings() {
	ctx := m.sm.Ctx
	log.Println(ctx.Settings)
	if ctx.SettingsPath == "" {
		return
	}
	if err := ctx.Settings.Save(ctx.SettingsPath); err != nil {
		log.Printf("WARNING: %v", err)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	ui.DrawCenteredText(screen, "HYPERLYDIAN", cx, menuTop-120, config.TextLightColor)
	ui.DrawCenteredText(screen, "Arrows/WASD - move, Q/E - rotate, Space - fire, 1/2 - weapon, Esc - pause", cx, menuTop-90, config.TextDimColor)
	if m.message != "" {
		ui.DrawCenteredText(screen, m.message, cx, menuTop-50, config.WarningColor)
	}
	for i, b := range m.buttons {
		b.Draw(screen, i == m.selected)
	}
}

func (m *MenuState) Exit() {}
