package system

import (
	"testing"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/entity"
	"hyperlydian/internal/event"
	"hyperlydian/internal/stats"
	"hyperlydian/internal/utils"
)

func parkedSpinner(t *testing.T, w *entity.World, x, y float64) *entity.SpinnerGrunt {
	t.Helper()
	s := NewSpinnerGruntGroup(w, nil)
	zero := 0.0
	g, err := s.CreateNewGrunt(SpinnerSpawn{Spawn: &utils.Point{X: x, Y: y}, Rotation: &zero})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	g.Pos.X = x
	g.State = entity.SpinnerRotating
	return g
}

func shot(w *entity.World, group *entity.Group, damage int, x, y float64) *entity.Projectile {
	p := entity.NewProjectile(w, entity.ProjectileConfig{
		Kind:   defs.ProjectileKinds[defs.QuarterRest],
		Damage: damage,
		Speed:  1,
		Angle:  90,
		X:      x,
		Y:      y,
		Scale:  1,
	})
	group.Add(p)
	return p
}

func TestPlayerProjectileKillsEnemy(t *testing.T) {
	w := newTestWorld(nil)
	g := parkedSpinner(t, w, 500, 400)
	pr := shot(w, w.PlayerProjectiles, 1000, 500, 400)
	miss := shot(w, w.PlayerProjectiles, 1000, 100, 100)

	NewCollisionSystem(w, NewHealthUpgradeGroup(w)).Update()

	if pr.Alive() {
		t.Error("Expected the projectile to be destroyed on hit")
	}
	if !miss.Alive() {
		t.Error("Expected the distant projectile to survive")
	}
	if g.Alive() || w.AllEnemies.Has(g.ID()) {
		t.Error("Expected the enemy to die and leave its groups")
	}
	if w.Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", w.Kills)
	}
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	w := newTestWorld(nil)
	p, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	pr := shot(w, w.EnemyProjectiles, 1, p.Pos.X, p.Pos.Y)

	NewCollisionSystem(w, nil).Update()

	if pr.Alive() {
		t.Error("Expected the enemy projectile to be destroyed")
	}
	if p.Health() != p.MaxHealth()-1 {
		t.Errorf("Expected health %d, got %d", p.MaxHealth()-1, p.Health())
	}
	if p.State.InRange.Has(pr.ID()) {
		t.Error("Expected the hit projectile to leave the dodge set")
	}
}

func TestUpgradeNudgesGruntWithoutBeingConsumed(t *testing.T) {
	w := newTestWorld(nil)
	strafers := NewStraferGruntGroup(w, nil)
	g, _ := strafers.CreateNewGrunt()
	g.State = entity.StraferStrafing
	g.Pos.X, g.Pos.Y = 600, 300
	u := entity.NewUpgrade(w, defs.UpgradeDefs[defs.SmallHealth], 600, 300)
	w.Upgrades.Add(u)

	c := NewCollisionSystem(w, nil)
	c.Update()
	if g.StrafeDirection != -1 {
		t.Errorf("Expected grunt to reverse, got direction %d", g.StrafeDirection)
	}
	if !u.Alive() {
		t.Error("Expected the upgrade to stay after nudging a grunt")
	}
	c.Update()
	if g.StrafeDirection != -1 {
		t.Error("Expected a sustained overlap not to reverse the grunt again")
	}
}

func TestHazardDamagesPlayerOnce(t *testing.T) {
	w := newTestWorld(nil)
	p, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	h := entity.NewHazard(w)
	h.Pos.X, h.Pos.Y = p.Pos.X, p.Pos.Y
	w.Hazards.Add(h)

	c := NewCollisionSystem(w, nil)
	c.Update()
	c.Update()
	if h.Alive() {
		t.Error("Expected the hazard to be destroyed")
	}
	if p.Health() != p.MaxHealth()-entity.HazardDamage {
		t.Errorf("Expected health %d, got %d", p.MaxHealth()-entity.HazardDamage, p.Health())
	}
}

func TestPlayerPicksUpUpgrade(t *testing.T) {
	w := newTestWorld(nil)
	p, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	p.HP.Value = 1
	u := entity.NewUpgrade(w, defs.UpgradeDefs[defs.SmallHealth], p.Pos.X, p.Pos.Y)
	w.Upgrades.Add(u)

	NewCollisionSystem(w, nil).Update()
	if u.Alive() {
		t.Error("Expected the upgrade to be collected")
	}
	if p.Health() != 2 {
		t.Errorf("Expected health 2, got %d", p.Health())
	}
}

func TestProjectileInsideEnemyHits(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"centered", 0, 0},
		{"off center", 4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(nil)
			g := parkedSpinner(t, w, 500, 400)
			pr := shot(w, w.PlayerProjectiles, 1, 500+tt.dx, 400+tt.dy)
			if !g.Bounds().Contains(pr.Bounds()) {
				t.Fatalf("Expected projectile %v inside enemy %v", pr.Bounds(), g.Bounds())
			}

			NewCollisionSystem(w, nil).Update()

			if pr.Alive() {
				t.Error("Expected the projectile to be destroyed on hit")
			}
			if g.Health() != g.MaxHealth()-1 {
				t.Errorf("Expected health %d, got %d", g.MaxHealth()-1, g.Health())
			}
		})
	}
}

func TestHitDistanceRecordedOncePerProjectile(t *testing.T) {
	tracker := stats.NewTracker(nil)
	w := entity.NewWorld(assets.NewManager(), utils.NewPRNGService(11), tracker, event.NewDispatcher(), config.Settings{})
	parkedSpinner(t, w, 500, 400)
	parkedSpinner(t, w, 500, 400)
	shot(w, w.PlayerProjectiles, 1, 500, 400)

	NewCollisionSystem(w, nil).Update()

	if got := tracker.Sum(stats.EnemiesHit); got != 2 {
		t.Errorf("Expected 2 enemies hit, got %.0f", got)
	}
	if got := tracker.Count(stats.EnemiesHitDistance); got != 1 {
		t.Errorf("Expected one hit distance sample, got %d", got)
	}
}

func TestFailingDeathCallbackKeepsPassesRunning(t *testing.T) {
	w := newTestWorld(nil)
	p, err := entity.NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	p.HP.Value = 1
	g := parkedSpinner(t, w, 200, 200)
	g.AddDeathCallback(func() { panic("callback failed") })
	pr := shot(w, w.PlayerProjectiles, 1000, 200, 200)
	u := entity.NewUpgrade(w, defs.UpgradeDefs[defs.SmallHealth], p.Pos.X, p.Pos.Y)
	w.Upgrades.Add(u)

	NewCollisionSystem(w, nil).Update()

	if pr.Alive() {
		t.Error("Expected the projectile to be destroyed on hit")
	}
	if g.Alive() || w.AllEnemies.Has(g.ID()) {
		t.Error("Expected the failing enemy to leave the world")
	}
	if u.Alive() || p.Health() != 2 {
		t.Errorf("Expected later passes to run, got upgrade alive=%v health=%d", u.Alive(), p.Health())
	}
}
