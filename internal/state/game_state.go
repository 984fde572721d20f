// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "hyperlydian/internal/app"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/render"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/ui"
)

var _ State = (*GameState)(nil)

// GameState - состояние игры. Держит одно прохождение; пауза возвращается в него же.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.SpriteRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:       sm,
		renderer: render.NewSpriteRenderer(),
		hud:      ui.NewHUD(),
	}
}

// Enter создает прохождение при первом входе. Возврат из паузы продолжает текущее.
func (g *GameState) Enter() {
	if g.game != nil {
		return
	}
	ctx := g.sm.Ctx
	var telemetry game.Telemetry
	if ctx.Tracker != nil {
		telemetry = ctx.Tracker
	}
	gameLogic, err := game.NewGame(ctx.Assets, ctx.Settings, nil, telemetry)
	if err != nil {
		log.Printf("Error: %v", err)
		g.sm.SetState(NewMenuState(g.sm, "Failed to start: "+err.Error()))
		return
	}
	g.game = gameLogic
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (g *GameState) Update(deltaTime float64) error {
	if g.game == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	if err := g.game.Update(deltaTime, readInput()); err != nil {
		g.leave(NewMenuState(g.sm, fmt.Sprintf("Game aborted: %v", err)))
		return nil
	}
	if g.game.Over() {
		g.leave(NewGameOverState(g.sm, g.summary()))
	}
	return nil
}

// Quit прерывает прохождение и возвращает в меню.
func (g *GameState) Quit() {
	if g.game != nil {
		g.game.Quit()
	}
	g.leave(NewMenuState(g.sm, ""))
}

func (g *GameState) leave(next State) {
	g.renderer.Cleanup()
	g.sm.SetState(next)
}

func (g *GameState) summary() []string {
	if t := g.sm.Ctx.Tracker; t != nil {
		return []string{
			fmt.Sprintf("Score: %.0f", t.Sum(stats.GameScore)),
			fmt.Sprintf("Enemies killed: %d", g.game.Kills()),
			fmt.Sprintf("Accuracy: %.1f%%", t.Accuracy()),
			fmt.Sprintf("Time survived: %ds", int(g.game.GameTime())/1000),
		}
	}
	return []string{
		fmt.Sprintf("Score: %d", g.game.Score()),
		fmt.Sprintf("Enemies killed: %d", g.game.Kills()),
		fmt.Sprintf("Time survived: %ds", int(g.game.GameTime())/1000),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	if g.game == nil {
		return
	}
	g.renderer.Draw(screen, g.game.Renderables())

	p := g.game.Player
	weapon := ""
	if wp := p.Weapon(); wp != nil {
		weapon = wp.Kind.ID
	}
	g.hud.Draw(screen, ui.HUDInfo{
		Health:     p.Health(),
		MaxHealth:  p.MaxHealth(),
		Score:      g.game.Score(),
		Kills:      g.game.Kills(),
		GameTimeMs: g.game.GameTime(),
		Weapon:     weapon,
		Event:      g.game.EventLabel(),
		EasyMode:   g.game.Settings.EasyMode,
		Invincible: g.game.Settings.PlayerInvincible,
	})
}

func (g *GameState) Exit() {}

func readInput() entity.PlayerInput {
	in := entity.PlayerInput{
		Up:          pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:        pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:        pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:       pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		RotateLeft:  pressed(ebiten.KeyQ),
		RotateRight: pressed(ebiten.KeyE),
		Fire:        pressed(ebiten.KeySpace),
		Weapon:      -1,
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		in.Weapon = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		in.Weapon = 1
	}
	return in
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
