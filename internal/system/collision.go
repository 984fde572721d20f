// internal/system/collision.go
package system

import (
	"sort"

	"github.com/solarlune/resolv"

	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/types"
	"hyperlydian/pkg/sprite"
)

// Параметры широкой фазы. Пространство сдвинуто на collisionPad, чтобы
// сущности за краем экрана тоже попадали в сетку.
const (
	collisionCell    = 32
	collisionPad     = 256
	collisionInflate = 1
	// Доля описанной окружности, которой подбирается улучшение
	PickupRatio = 0.7
)

var (
	tagPlayer     = resolv.NewTag("player")
	tagEnemy      = resolv.NewTag("enemy")
	tagPlayerShot = resolv.NewTag("player_projectile")
	tagEnemyShot  = resolv.NewTag("enemy_projectile")
	tagUpgrade    = resolv.NewTag("upgrade")
	tagHazard     = resolv.NewTag("hazard")
)

// CollisionSystem каждый кадр проводит столкновения в фиксированном порядке проходов.
// Кандидатов дает сетка resolv, точная проверка - прямоугольники, окружности или маски.
type CollisionSystem struct {
	world    *entity.World
	upgrades *HealthUpgradeGroup

	space  *resolv.Space
	owners map[resolv.IShape]entity.Entity
	shapes map[types.EntityID]resolv.IShape
}

func NewCollisionSystem(w *entity.World, upgrades *HealthUpgradeGroup) *CollisionSystem {
	return &CollisionSystem{world: w, upgrades: upgrades}
}

// Update выполняет все проходы столкновений за кадр.
func (s *CollisionSystem) Update() {
	s.rebuild()
	s.gruntsVsEnemies()
	s.playerProjectilesVsEnemies()
	s.upgradesVsPlayer()
	s.hazardsVsPlayer()
	s.hazardsVsHazards()
	s.upgradesVsGrunts()
	s.enemiesVsPlayer()
	s.enemyProjectilesVsPlayer()
}

// rebuild заново заполняет сетку текущими прямоугольниками сущностей.
func (s *CollisionSystem) rebuild() {
	w := s.world
	scr := w.Screen
	s.space = resolv.NewSpace(int(scr.W)+2*collisionPad, int(scr.H)+2*collisionPad, collisionCell, collisionCell)
	s.owners = make(map[resolv.IShape]entity.Entity)
	s.shapes = make(map[types.EntityID]resolv.IShape)

	if p := w.Player; p != nil && p.Alive() {
		s.add(p, tagPlayer)
	}
	s.addGroup(w.AllEnemies, tagEnemy)
	s.addGroup(w.PlayerProjectiles, tagPlayerShot)
	s.addGroup(w.EnemyProjectiles, tagEnemyShot)
	s.addGroup(w.Upgrades, tagUpgrade)
	s.addGroup(w.Hazards, tagHazard)
}

func (s *CollisionSystem) addGroup(g *entity.Group, tag resolv.Tags) {
	for _, e := range g.Snapshot() {
		s.add(e, tag)
	}
}

func (s *CollisionSystem) add(e entity.Entity, tag resolv.Tags) {
	if _, ok := s.shapes[e.ID()]; ok {
		return
	}
	r := e.Bounds().Inflate(collisionInflate)
	sh := resolv.NewRectangleFromTopLeft(r.X+collisionPad, r.Y+collisionPad, r.W, r.H)
	sh.Tags().Set(tag)
	s.space.Add(sh)
	s.owners[sh] = e
	s.shapes[e.ID()] = sh
}

// candidates возвращает живых соседей e с тегом tag, чьи прямоугольники пересекаются
// с прямоугольником e. Сетка resolv только сужает поиск, пересечение проверяет Overlaps.
// Порядок - по возрастанию ID.
func (s *CollisionSystem) candidates(e entity.Entity, tag resolv.Tags) []entity.Entity {
	sh, ok := s.shapes[e.ID()]
	if !ok {
		return nil
	}
	var out []entity.Entity
	seen := make(map[types.EntityID]bool)
	sh.SelectTouchingCells(1).FilterShapes().ByTags(tag).ForEach(func(other resolv.IShape) bool {
		o, ok := s.owners[other]
		if !ok || o.ID() == e.ID() || seen[o.ID()] {
			return true
		}
		seen[o.ID()] = true
		if o.Alive() && entity.Overlaps(e, o) {
			out = append(out, o)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *CollisionSystem) player() *entity.Player {
	if p := s.world.Player; p != nil && p.Alive() {
		return p
	}
	return nil
}

func strafers(g *entity.Group) []*entity.StraferGrunt {
	var out []*entity.StraferGrunt
	for _, e := range g.Snapshot() {
		if sg, ok := e.(*entity.StraferGrunt); ok {
			out = append(out, sg)
		}
	}
	return out
}

// 1. Гранты разворачиваются при первом новом перекрытии с другим врагом.
func (s *CollisionSystem) gruntsVsEnemies() {
	for _, g := range strafers(s.world.Strafers) {
		if !g.Alive() {
			continue
		}
		entity.Isolate(g, func() {
			for _, o := range s.candidates(g, tagEnemy) {
				if g.OnEnemyCollision(o) {
					break
				}
			}
		})
	}
}

// 2. Снаряд игрока исчезает и ранит всех врагов, которых касается маской.
func (s *CollisionSystem) playerProjectilesVsEnemies() {
	w := s.world
	for _, e := range w.PlayerProjectiles.Snapshot() {
		pr, ok := e.(*entity.Projectile)
		if !ok || !pr.Alive() {
			continue
		}
		var hit []entity.Grunt
		for _, o := range s.candidates(pr, tagEnemy) {
			if g, ok := o.(entity.Grunt); ok && entity.MaskOverlaps(pr, g) {
				hit = append(hit, g)
			}
		}
		if len(hit) == 0 {
			continue
		}
		pr.Kill()
		w.Stats.Add(stats.EnemiesHitDistance, pr.DistanceTraveled())
		for _, g := range hit {
			if !g.Alive() {
				continue
			}
			w.Stats.Add(stats.EnemiesHit, 1)
			entity.Isolate(g, func() {
				if g.TakeDamage(pr.Damage) && s.upgrades != nil {
					x, y := g.Position()
					s.upgrades.CreateOnProbability(x, y)
				}
			})
		}
	}
}

// 3. Игрок подбирает улучшения (уменьшенная окружность).
func (s *CollisionSystem) upgradesVsPlayer() {
	p := s.player()
	if p == nil {
		return
	}
	for _, o := range s.candidates(p, tagUpgrade) {
		u, ok := o.(*entity.Upgrade)
		if !ok || !sprite.CircleRatioCollide(u.Bounds(), p.Bounds(), PickupRatio) {
			continue
		}
		entity.Isolate(u, func() {
			u.Collect(p)
			if d := s.world.Dispatcher; d != nil {
				d.Dispatch(event.Event{Type: event.UpgradeCollected, Data: u.ID()})
			}
		})
	}
}

// 4. Падающие буквы ранят игрока и исчезают.
func (s *CollisionSystem) hazardsVsPlayer() {
	p := s.player()
	if p == nil {
		return
	}
	for _, o := range s.candidates(p, tagHazard) {
		h, ok := o.(*entity.Hazard)
		if !ok || !entity.MaskOverlaps(h, p) {
			continue
		}
		h.Kill()
		entity.Isolate(p, func() { p.TakeDamage(h.Damage) })
		if !p.Alive() {
			return
		}
	}
}

// 5. Буквы расходятся при первом новом перекрытии.
func (s *CollisionSystem) hazardsVsHazards() {
	for _, e := range s.world.Hazards.Snapshot() {
		h, ok := e.(*entity.Hazard)
		if !ok || !h.Alive() {
			continue
		}
		entity.Isolate(h, func() {
			for _, o := range s.candidates(h, tagHazard) {
				other, ok := o.(*entity.Hazard)
				if ok && entity.MaskOverlaps(h, other) && h.OnHazardCollision(other) {
					break
				}
			}
		})
	}
}

// 6. Улучшение разворачивает гранта, но остается на месте.
func (s *CollisionSystem) upgradesVsGrunts() {
	for _, g := range strafers(s.world.Strafers) {
		if !g.Alive() {
			continue
		}
		entity.Isolate(g, func() {
			for _, u := range s.candidates(g, tagUpgrade) {
				if g.OnUpgradeCollision(u) {
					break
				}
			}
		})
	}
}

// 7. Касание врагов с игроком: гранты разворачиваются, урона нет.
func (s *CollisionSystem) enemiesVsPlayer() {
	p := s.player()
	if p == nil {
		return
	}
	near := 0
	for _, o := range s.candidates(p, tagEnemy) {
		if !entity.MaskOverlaps(o, p) {
			continue
		}
		near++
		if g, ok := o.(*entity.StraferGrunt); ok {
			entity.Isolate(g, func() { g.OnPlayerCollision(p) })
		}
	}
	s.world.Stats.Update(stats.PlayerNearEnemy, float64(near))
}

// 8. Вражеские снаряды: рядом с игроком - кандидат на уклонение, касание маской - попадание.
func (s *CollisionSystem) enemyProjectilesVsPlayer() {
	p := s.player()
	if p == nil {
		return
	}
	for _, o := range s.candidates(p, tagEnemyShot) {
		pr, ok := o.(*entity.Projectile)
		if !ok || !pr.Alive() {
			continue
		}
		p.AddProjectilesInRange(pr.ID())
		if !entity.MaskOverlaps(pr, p) {
			continue
		}
		p.RegisterHit(pr)
		pr.Kill()
		entity.Isolate(p, func() { p.TakeDamage(pr.Damage) })
		if !p.Alive() {
			return
		}
	}
	p.ResolveDodges()
}
