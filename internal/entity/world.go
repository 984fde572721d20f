// internal/entity/world.go
package entity

import (
	"sort"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/types"
	"hyperlydian/internal/utils"
	"hyperlydian/pkg/sprite"
)

// World владеет всеми сущностями прохождения и группами, в которых они состоят.
type World struct {
	GameTime   float64 // мс с начала прохождения
	NextID     types.EntityID
	Screen     sprite.Rect
	Assets     *assets.Manager
	Rng        utils.Random
	Stats      stats.Sink
	Dispatcher *event.Dispatcher
	Settings   config.Settings

	Player   *Player
	entities map[types.EntityID]Entity

	AllSprites        *Group
	AllEnemies        *Group
	Strafers          *Group
	Spinners          *Group
	PlayerProjectiles *Group
	EnemyProjectiles  *Group
	Upgrades          *Group
	Hazards           *Group
	Notes             *Group
	Staff             *Group
	Indicators        *Group

	Kills        int
	Score        int
	lastKillTime float64
}

// NewWorld создает пустой мир размером с экран.
func NewWorld(a *assets.Manager, rng utils.Random, sink stats.Sink, d *event.Dispatcher, s config.Settings) *World {
	if sink == nil {
		sink = stats.Nop{}
	}
	return &World{
		NextID:            1,
		Screen:            sprite.Rect{W: config.ScreenWidth, H: config.ScreenHeight},
		Assets:            a,
		Rng:               rng,
		Stats:             sink,
		Dispatcher:        d,
		Settings:          s,
		entities:          make(map[types.EntityID]Entity),
		AllSprites:        NewGroup("all_sprites"),
		AllEnemies:        NewGroup("all_enemies"),
		Strafers:          NewGroup("strafer_grunts"),
		Spinners:          NewGroup("spinner_grunts"),
		PlayerProjectiles: NewGroup("player_projectiles"),
		EnemyProjectiles:  NewGroup("enemy_projectiles"),
		Upgrades:          NewGroup("health_upgrades"),
		Hazards:           NewGroup("hazards"),
		Notes:             NewGroup("notes"),
		Staff:             NewGroup("staff"),
		Indicators:        NewGroup("side_bars"),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Register делает сущность видимой через Lookup и добавляет ее в AllSprites.
func (w *World) Register(e Entity) {
	w.entities[e.ID()] = e
	w.AllSprites.Add(e)
}

// Lookup возвращает живую сущность по ID.
func (w *World) Lookup(id types.EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Count - количество живых сущностей
func (w *World) Count() int {
	return len(w.entities)
}

// Now - игровое время в мс
func (w *World) Now() float64 {
	return w.GameTime
}

// RenderItem - то, что нужно рендереру для одной сущности
type RenderItem struct {
	ID    types.EntityID
	Frame *assets.Frame
	Rect  sprite.Rect
	Layer int
	Alpha uint8
}

// Renderables возвращает сущности в порядке отрисовки: по возрастанию слоя,
// внутри слоя - в порядке добавления.
func (w *World) Renderables() []RenderItem {
	members := w.AllSprites.Snapshot()
	items := make([]RenderItem, 0, len(members))
	for _, e := range members {
		items = append(items, RenderItem{
			ID:    e.ID(),
			Frame: e.Frame(),
			Rect:  e.Bounds(),
			Layer: e.Layer(),
			Alpha: e.Alpha(),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Layer < items[j].Layer })
	return items
}

// Clear убивает все сущности, кроме тех, для которых keep вернул true. Колбэки смерти не вызываются.
func (w *World) Clear(keep func(Entity) bool) {
	for _, e := range w.AllSprites.Snapshot() {
		if keep != nil && keep(e) {
			continue
		}
		e.Kill()
	}
}
