// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1440
	ScreenHeight = 900
	FPS          = 60
	MaxDeltaTime = 0.06 // секунды, защита от скачков после паузы окна

	// Периоды таймеров спавна, мс
	StraferSpawnInterval = 2000
	SpinnerSpawnInterval = 10000
	NoteSpawnInterval    = 50
	StaffSpawnInterval   = 1800
	HazardSpawnInterval  = 300

	// OSC
	OSCHost          = "127.0.0.1"
	OSCOutgoingPort  = 8001
	OSCIncomingPort  = 8002
	AudioAppPath     = "dist/max-hyperlydian.app"
	AudioLoadTimeout = 30.0 // секунды

	SettingsFile = "hyperlydian.yaml"

	// Слои отрисовки
	LayerBackground = 0
	LayerDecor      = 1
	LayerProjectile = 2
	LayerIndicator  = 2
	LayerUpgrade    = 3
	LayerCharacter  = 5

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{140, 140, 160, 255}
	WarningColor    = color.RGBA{220, 40, 40, 255}

	PlayerColor       = color.RGBA{90, 200, 255, 255}
	StraferColor      = color.RGBA{230, 90, 60, 255}
	SpinnerColor      = color.RGBA{200, 80, 220, 255}
	ProjectileColor   = color.RGBA{250, 250, 250, 255}
	EnemyShotColor    = color.RGBA{255, 210, 60, 255}
	HazardColor       = color.RGBA{70, 120, 255, 255}
	HealthColor       = color.RGBA{60, 220, 90, 255}
	MaxHealthColor    = color.RGBA{255, 215, 0, 255}
	DecorColor        = color.RGBA{120, 120, 150, 160}
	HealthBarEmpty    = color.RGBA{60, 60, 60, 255}
	HealthBarStroke   = color.RGBA{240, 240, 240, 255}
	MenuButtonColor   = color.RGBA{70, 130, 180, 220}
	MenuButtonHover   = color.RGBA{220, 60, 60, 220}
	PauseOverlayColor = color.RGBA{0, 0, 0, 150}
)
