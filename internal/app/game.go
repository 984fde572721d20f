// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/system"
	"hyperlydian/internal/types"
	"hyperlydian/internal/utils"
)

// Telemetry - приемник статистики, который живет дольше одного прохождения.
// stats.Tracker реализует его полностью.
type Telemetry interface {
	stats.Sink
	BeginPlaythrough(nowMs float64, maxHealth int)
	SetGameTime(nowMs float64)
	Flush()
	EndPlaythrough(nowMs float64)
}

type nopTelemetry struct{ stats.Nop }

func (nopTelemetry) BeginPlaythrough(float64, int) {}
func (nopTelemetry) SetGameTime(float64)           {}
func (nopTelemetry) Flush()                        {}
func (nopTelemetry) EndPlaythrough(float64)        {}

// Game holds one playthrough: world, systems and the frame loop.
type Game struct {
	World      *entity.World
	Player     *entity.Player
	Dispatcher *event.Dispatcher
	Timers     *event.TimerBus
	Telemetry  Telemetry
	Settings   config.Settings

	Strafers   *system.StraferGruntGroup
	Spinners   *system.SpinnerGruntGroup
	Upgrades   *system.HealthUpgradeGroup
	Events     *system.SpecialEventManager
	Difficulty *system.DifficultySystem
	Collisions *system.CollisionSystem
	Background *system.BackgroundSystem

	gameTime float64 // мс
	frames   int
	over     bool
	finished bool
	err      error
}

// NewGame собирает новое прохождение. rng и telemetry можно подменить в тестах;
// nil telemetry отключает статистику.
func NewGame(a *assets.Manager, settings config.Settings, rng utils.Random, telemetry Telemetry) (*Game, error) {
	if a == nil {
		a = assets.NewManager()
	}
	if rng == nil {
		rng = utils.NewPRNGService(settings.Seed)
	}
	if telemetry == nil {
		telemetry = nopTelemetry{}
	}

	dispatcher := event.NewDispatcher()
	timers := event.NewTimerBus(dispatcher)
	w := entity.NewWorld(a, rng, telemetry, dispatcher, settings)

	player, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	g := &Game{
		World:      w,
		Player:     player,
		Dispatcher: dispatcher,
		Timers:     timers,
		Telemetry:  telemetry,
		Settings:   settings,
	}
	g.Strafers = system.NewStraferGruntGroup(w, timers)
	g.Spinners = system.NewSpinnerGruntGroup(w, timers)
	g.Upgrades = system.NewHealthUpgradeGroup(w)
	g.Events = system.NewSpecialEventManager(w, timers, g.Spinners)
	g.Collisions = system.NewCollisionSystem(w, g.Upgrades)
	g.Background = system.NewBackgroundSystem(w, timers)
	g.Difficulty = system.NewDifficultySystem(w, dispatcher, g.standardKnobs(), g.specialKnobs())

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.SpawnStraferGrunt, listener)
	dispatcher.Subscribe(event.SpawnSpinnerGrunt, listener)
	dispatcher.Subscribe(event.PlayerDeath, listener)
	dispatcher.Subscribe(event.FadeOutEventEntities, listener)

	if settings.NoEnemies {
		timers.Disable(event.SpawnStraferGrunt)
		timers.Disable(event.SpawnSpinnerGrunt)
	}
	g.Background.Populate()

	telemetry.BeginPlaythrough(0, player.MaxHealth())
	log.Printf("Game initialized (easy mode: %v, invincible: %v)", settings.EasyMode, settings.PlayerInvincible)
	return g, nil
}

// standardKnobs - ручки, которые крутятся по счетчику убийств.
func (g *Game) standardKnobs() []system.Knob {
	return []system.Knob{
		{Name: "strafer/max_rows", Apply: g.Strafers.ChangeMaxRows},
		{Name: "strafer/grunts_per_row", Apply: g.Strafers.ChangeGruntsPerRow},
		{Name: "strafer/health", Apply: g.Strafers.ChangeGruntHealth},
		{Name: "strafer/spawn_timer", Apply: g.Strafers.ChangeSpawnTimer},
		{Name: "spinner/max_grunts", Apply: g.Spinners.ChangeMaxGrunts},
		{Name: "spinner/health", Apply: g.Spinners.ChangeGruntHealth},
		{Name: "spinner/spawn_timer", Apply: g.Spinners.ChangeSpawnTimer},
	}
}

// specialKnobs - ручки, которые крутятся по счетчику завершенных событий.
func (g *Game) specialKnobs() []system.Knob {
	return []system.Knob{
		{Name: "spinner/grunts_per_ellipse", Apply: g.Spinners.ChangeGruntsPerEllipse},
		{Name: "events/enemies_per_event", Apply: g.Events.ChangeEnemiesPerEvent},
	}
}

// Update advances the game by one frame. deltaTime is in seconds.
// A violated precondition ends the playthrough and is returned as an error.
func (g *Game) Update(deltaTime float64, input entity.PlayerInput) (err error) {
	if g.over {
		g.finish()
		return g.err
	}
	defer func() {
		if r := recover(); r != nil {
			pe := types.AsPrecondition(r)
			if pe == nil {
				panic(r)
			}
			err = g.abort(pe)
		}
	}()

	dt := min(deltaTime, config.MaxDeltaTime)
	if dt <= 0 {
		return nil
	}
	dtMs := dt * 1000
	g.gameTime += dtMs
	g.World.GameTime = g.gameTime
	g.frames++

	g.Player.SetInput(input)
	g.guard("timers", func() { g.Timers.Update(dtMs) })
	g.guard("event start", g.maybeStartEvent)

	ctx := &entity.UpdateContext{Delta: dt}
	for _, e := range g.World.AllSprites.Snapshot() {
		if e.Alive() {
			entity.Isolate(e, func() { e.Update(ctx) })
		}
	}
	g.attack()
	g.guard("collisions", g.Collisions.Update)
	g.updateEvents(dtMs)
	if !g.Player.Alive() {
		g.over = true
	}

	g.updateStats()
	if g.over {
		g.finish()
	}
	return nil
}

// guard выполняет шаг кадра, который не принадлежит одной сущности.
// Сбой пишется в лог и возвращает false; нарушенное предусловие пробрасывается дальше.
func (g *Game) guard(step string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if types.AsPrecondition(r) != nil {
				panic(r)
			}
			log.Printf("Error: %s failed: %v", step, r)
		}
	}()
	fn()
	return true
}

// attack - враги, вышедшие на позицию, и игрок стреляют.
func (g *Game) attack() {
	for _, e := range g.World.AllEnemies.Snapshot() {
		if grunt, ok := e.(entity.Grunt); ok && grunt.Alive() {
			entity.Isolate(grunt, func() { grunt.Attack() })
		}
	}
	if g.Player.Alive() {
		g.guard("player attack", func() { g.Player.Attack() })
	}
}

// updateEvents продвигает особое событие. Упавшее событие завершается.
func (g *Game) updateEvents(dtMs float64) {
	if !g.guard("event update", func() { g.Events.Update(dtMs) }) {
		if g.Events.EventInProgress() {
			g.guard("event end", g.Events.EndEvent)
		}
		return
	}
	if g.Events.EventIsFinished() {
		g.guard("event end", g.Events.EndEvent)
	}
	if g.Events.ShouldQueue() {
		g.Events.QueueEvent()
	}
}

// maybeStartEvent запускает событие из очереди, когда на экране не осталось обычных врагов.
func (g *Game) maybeStartEvent() {
	if !g.Events.EventQueued() || g.Events.EventInProgress() || g.AmbientEnemies() > 0 {
		return
	}
	if err := g.Events.StartEvent(); err != nil {
		log.Printf("Error: %v", err)
		g.guard("event end", g.Events.EndEvent)
	}
}

// AmbientEnemies - число живых врагов, не принадлежащих особому событию.
func (g *Game) AmbientEnemies() int {
	n := 0
	for _, e := range g.World.AllEnemies.Snapshot() {
		if e.Alive() && !e.SpecialEvent() {
			n++
		}
	}
	return n
}

// spawnAllowed - обычные враги появляются только вне особых событий.
func (g *Game) spawnAllowed() bool {
	return !g.over && !g.Settings.NoEnemies && g.Events.State() == system.EventIdle
}

func (g *Game) spawnStrafer() {
	if !g.spawnAllowed() || g.Strafers.IsFull() {
		return
	}
	if _, ok := g.Strafers.CreateNewGrunt(); ok {
		g.Events.CountStandardSpawn()
	}
}

func (g *Game) spawnSpinner() {
	if !g.spawnAllowed() || g.Spinners.IsFull() {
		return
	}
	if _, err := g.Spinners.CreateNewGrunt(system.SpinnerSpawn{}); err != nil {
		log.Printf("Error: %v", err)
		return
	}
	g.Events.CountStandardSpawn()
}

// fadeOutEventEntities убирает все, что осталось от закончившегося события.
func (g *Game) fadeOutEventEntities() {
	g.World.Clear(func(e entity.Entity) bool { return !e.SpecialEvent() })
}

func (g *Game) updateStats() {
	t := g.Telemetry
	t.Update(stats.EnemiesOnScreen, float64(g.World.AllEnemies.Len()))
	t.Update(stats.GameFrames, float64(g.frames))
	t.SetGameTime(g.gameTime)
	t.Flush()
}

// abort завершает прохождение после нарушенного предусловия.
func (g *Game) abort(pe *types.PreconditionError) error {
	log.Printf("Error: gameplay aborted: %v", pe)
	g.over = true
	g.err = fmt.Errorf("gameplay aborted: %w", pe)
	g.finish()
	return g.err
}

// finish останавливает таймеры и закрывает прохождение в статистике. Повторный вызов ничего не делает.
func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.Timers.DisableAll()
	g.Telemetry.Flush()
	g.Telemetry.EndPlaythrough(g.gameTime)
}

// Quit прерывает прохождение по желанию игрока.
func (g *Game) Quit() {
	g.over = true
	g.finish()
}

// EventLabel - подпись для индикатора особого события, пустая вне событий.
func (g *Game) EventLabel() string {
	switch g.Events.State() {
	case system.EventQueued:
		return "Incoming"
	case system.EventInProgress:
		return g.Events.Current().Name()
	}
	return ""
}

// Over - прохождение закончено (смерть игрока или ошибка).
func (g *Game) Over() bool { return g.over }

// Err - ошибка, которой закончилось прохождение, или nil.
func (g *Game) Err() error { return g.err }

// GameTime - мс с начала прохождения
func (g *Game) GameTime() float64 { return g.gameTime }

func (g *Game) Frames() int { return g.frames }
func (g *Game) Score() int  { return g.World.Score }
func (g *Game) Kills() int  { return g.World.Kills }

// Renderables возвращает сущности в порядке отрисовки.
func (g *Game) Renderables() []entity.RenderItem {
	return g.World.Renderables()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnStraferGrunt:
		l.game.spawnStrafer()
	case event.SpawnSpinnerGrunt:
		l.game.spawnSpinner()
	case event.PlayerDeath:
		l.game.over = true
	case event.FadeOutEventEntities:
		l.game.fadeOutEventEntities()
	}
}
