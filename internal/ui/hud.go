// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"hyperlydian/internal/config"
)

// HUDInfo - все, что показывает HUD за один кадр
type HUDInfo struct {
	Health, MaxHealth int
	Score, Kills      int
	GameTimeMs        float64
	Weapon            string
	Event             string
	EasyMode          bool
	Invincible        bool
}

// HUD - здоровье, счет, время и индикатор события
type HUD struct {
	health *PlayerHealthIndicator
	event  *EventIndicator
}

func NewHUD() *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(20, 40),
		event:  NewEventIndicator(config.ScreenWidth-30, 30, 10),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	h.health.Draw(screen, info.Health, info.MaxHealth)

	y := int(40+h.health.Height(info.MaxHealth)) + 20
	secs := int(info.GameTimeMs) / 1000
	lines := []string{
		fmt.Sprintf("Score: %d", info.Score),
		fmt.Sprintf("Kills: %d", info.Kills),
		fmt.Sprintf("Time: %d:%02d", secs/60, secs%60),
		"Weapon: " + info.Weapon,
	}
	if info.EasyMode {
		lines = append(lines, "Easy mode")
	}
	if info.Invincible {
		lines = append(lines, "Invincible")
	}
	for _, l := range lines {
		DrawText(screen, l, 20, y, config.TextLightColor)
		y += 16
	}

	h.event.Draw(screen, info.Event, info.GameTimeMs)
}
