// cmd/hyperlydian/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/osc"
	"hyperlydian/internal/state"
	"hyperlydian/internal/stats"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", config.SettingsFile, "path to the YAML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(settings)

	if settings.TuningPath != "" {
		if err := defs.LoadTuning(settings.TuningPath); err != nil {
			log.Fatal(err)
		}
	}

	assetManager := assets.NewManager()
	defer assetManager.Cleanup()
	if settings.AssetDir != "" {
		log.Printf("Loaded %d sprite overrides from %s", assetManager.LoadDir(settings.AssetDir), settings.AssetDir)
	}

	var tracker *stats.Tracker
	if !settings.OSC.Disabled {
		client, err := osc.Dial(settings.OSC.Host, settings.OSC.OutPort)
		if err != nil {
			log.Printf("WARNING: Telemetry disabled: %v", err)
		} else {
			defer client.Close()
			tracker = stats.NewTracker(client)
		}
	}

	link := osc.NewDisabledLink()
	if !settings.Audio.Disabled {
		timeout := time.Duration(config.AudioLoadTimeout * float64(time.Second))
		l, err := osc.StartAudioLink(settings.OSC.Host, settings.OSC.InPort, settings.Audio.AppPath, timeout)
		if err != nil {
			log.Printf("WARNING: Audio link disabled: %v", err)
		} else {
			link = l
		}
	}
	defer link.Close()

	sm := state.NewStateMachine(&state.Context{
		Settings:     settings,
		SettingsPath: *settingsPath,
		Assets:       assetManager,
		Tracker:      tracker,
		Link:         link,
	})
	sm.SetState(state.NewLoadingState(sm))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("HyperLydian")
	ebiten.SetTPS(config.FPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
