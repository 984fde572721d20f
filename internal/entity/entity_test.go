package entity

import (
	"errors"
	"testing"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
	"hyperlydian/internal/event"
	"hyperlydian/internal/types"
	"hyperlydian/internal/utils"
)

func newTestWorld() *World {
	return NewWorld(assets.NewManager(), utils.NewPRNGService(7), nil, event.NewDispatcher(), config.Settings{})
}

func mustWeapon(t *testing.T, w *World, cfg WeaponConfig) *Weapon {
	t.Helper()
	wp, err := NewWeapon(w, cfg)
	if err != nil {
		t.Fatalf("Unexpected weapon error: %v", err)
	}
	return wp
}

func expectPrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		var pe *types.PreconditionError
		if !ok || !errors.As(err, &pe) {
			t.Errorf("Expected precondition panic, got %v", r)
		}
	}()
	fn()
}

func TestWeaponFiresEverySixthFrame(t *testing.T) {
	w := newTestWorld()
	wp := mustWeapon(t, w, WeaponConfig{
		Projectile: defs.QuarterRest,
		Ammo:       InfiniteAmmo,
		RateOfFire: 100,
		Target:     w.EnemyProjectiles,
	})

	var fired []int
	for frame := 0; frame <= 30; frame++ {
		w.GameTime = float64(frame) * 16.67
		if wp.Attack(500, 500, 0) > 0 {
			fired = append(fired, frame)
		}
	}
	expected := []int{0, 6, 12, 18, 24, 30}
	if len(fired) != len(expected) {
		t.Fatalf("Expected shots on frames %v, got %v", expected, fired)
	}
	for i := range expected {
		if fired[i] != expected[i] {
			t.Errorf("Expected shot %d on frame %d, got %d", i, expected[i], fired[i])
		}
	}
	if wp.Ammo != InfiniteAmmo {
		t.Errorf("Expected infinite ammo to stay %d, got %d", InfiniteAmmo, wp.Ammo)
	}
}

func TestWeaponMuzzlesShareOneGate(t *testing.T) {
	w := newTestWorld()
	wp := mustWeapon(t, w, WeaponConfig{
		Projectile: defs.Accidental,
		Ammo:       5,
		RateOfFire: 300,
		Muzzles:    [][2]float64{{0, -10}, {0, 10}},
		Target:     w.EnemyProjectiles,
	})

	if n := wp.Attack(100, 100, 90); n != 2 {
		t.Errorf("Expected 2 projectiles, got %d", n)
	}
	if n := wp.Attack(100, 100, 90); n != 0 {
		t.Errorf("Expected the second volley inside the window to be rejected, got %d", n)
	}
	if wp.Ammo != 3 {
		t.Errorf("Expected 3 ammo left, got %d", wp.Ammo)
	}
	if got := w.EnemyProjectiles.Len(); got != 2 {
		t.Errorf("Expected 2 projectiles in the target group, got %d", got)
	}
	if got := w.AllSprites.Len(); got != 2 {
		t.Errorf("Expected 2 projectiles in the draw registry, got %d", got)
	}

	w.GameTime = 300
	wp.Attack(100, 100, 90)
	w.GameTime = 600
	if n := wp.Attack(100, 100, 90); n != 1 {
		t.Errorf("Expected only the last round to fire, got %d", n)
	}
	if !wp.Empty() {
		t.Error("Expected weapon to be empty")
	}
	w.GameTime = 900
	if n := wp.Attack(100, 100, 90); n != 0 {
		t.Errorf("Expected empty weapon not to fire, got %d", n)
	}
	wp.Reload(2)
	if wp.Ammo != 2 {
		t.Errorf("Expected 2 ammo after reload, got %d", wp.Ammo)
	}
}

func TestNewWeaponRejectsInvalidConfig(t *testing.T) {
	w := newTestWorld()
	tests := []struct {
		name string
		cfg  WeaponConfig
		want error
	}{
		{"unknown projectile", WeaponConfig{Projectile: "tuba", Target: w.EnemyProjectiles}, defs.ErrUnknownDefinition},
		{"bad color", WeaponConfig{Projectile: defs.MusicNote, Color: "green", Target: w.EnemyProjectiles}, defs.ErrUnsupportedColor},
		{"bad variant", WeaponConfig{Projectile: defs.Accidental, Variant: 3, Target: w.EnemyProjectiles}, defs.ErrUnsupportedVariant},
		{"no target", WeaponConfig{Projectile: defs.QuarterRest}, ErrNoTargetGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWeapon(w, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestProjectileRemovedOffscreen(t *testing.T) {
	w := newTestWorld()
	kind := defs.ProjectileKinds[defs.QuarterRest]
	p := NewProjectile(w, ProjectileConfig{Kind: kind, Speed: 50, Angle: 90, X: 200, Y: 60, Scale: 1})
	w.EnemyProjectiles.Add(p)

	frames := 0
	for p.Alive() && frames < 10 {
		p.Update(&UpdateContext{Delta: 1.0 / 60})
		frames++
	}
	if p.Alive() {
		t.Fatal("Expected projectile to leave the screen")
	}
	if frames != 2 {
		t.Errorf("Expected removal on frame 2, got %d", frames)
	}
	if w.EnemyProjectiles.Has(p.ID()) || w.AllSprites.Has(p.ID()) {
		t.Error("Expected projectile to be removed from every group")
	}
}

func TestStraferReachesRowAfter32Frames(t *testing.T) {
	w := newTestWorld()
	def := defs.EnemyDefs[defs.StraferGrunt]
	def.SpawnSpeed = 8
	g := NewStraferGrunt(w, def, StraferConfig{Row: 0, SpawnDirection: SpawnFromTop})
	if g.Pos.Y != -100 {
		t.Fatalf("Expected spawn at y=-100, got %v", g.Pos.Y)
	}
	g.SetStoppingPoint(150)

	frames := 0
	for g.State != StraferStrafing && frames < 100 {
		g.Update(&UpdateContext{Delta: 1.0 / 60})
		frames++
	}
	if frames != 32 {
		t.Errorf("Expected Strafing after 32 frames, got %d", frames)
	}
	if g.Pos.Y != 150 {
		t.Errorf("Expected grunt clamped to row depth 150, got %v", g.Pos.Y)
	}
}

func TestStraferFromBottomMovesUp(t *testing.T) {
	w := newTestWorld()
	def := defs.EnemyDefs[defs.StraferGrunt]
	g := NewStraferGrunt(w, def, StraferConfig{SpawnDirection: SpawnFromBottom})
	g.SetStoppingPoint(w.Screen.H - 150)
	for i := 0; i < 200 && g.Transitioning(); i++ {
		g.Update(&UpdateContext{Delta: 1.0 / 60})
	}
	if g.Transitioning() {
		t.Fatal("Expected grunt from the bottom to reach its row")
	}
	if g.Pos.Y != w.Screen.H-150 {
		t.Errorf("Expected y=%v, got %v", w.Screen.H-150, g.Pos.Y)
	}
}

func TestStraferWithoutStopPointPanics(t *testing.T) {
	w := newTestWorld()
	g := NewStraferGrunt(w, defs.EnemyDefs[defs.StraferGrunt], StraferConfig{})
	expectPrecondition(t, func() { g.Update(&UpdateContext{Delta: 1.0 / 60}) })
}

func TestStraferBouncesOffScreenEdge(t *testing.T) {
	w := newTestWorld()
	g := NewStraferGrunt(w, defs.EnemyDefs[defs.StraferGrunt], StraferConfig{})
	g.SetStoppingPoint(-100)
	g.Update(&UpdateContext{Delta: 1.0 / 60})
	if g.State != StraferStrafing {
		t.Fatal("Expected grunt to be strafing")
	}
	g.Pos.X = w.Screen.W - 1
	g.StrafeDirection = 1
	g.Update(&UpdateContext{Delta: 1.0 / 60})
	if g.StrafeDirection != -1 {
		t.Errorf("Expected direction -1 at the right edge, got %d", g.StrafeDirection)
	}
	if r := g.Bounds(); r.Right() > w.Screen.Right() {
		t.Errorf("Expected grunt clamped inside the screen, right edge %v", r.Right())
	}
}

func TestStraferReversesOncePerOverlap(t *testing.T) {
	w := newTestWorld()
	def := defs.EnemyDefs[defs.StraferGrunt]
	a := NewStraferGrunt(w, def, StraferConfig{})
	b := NewStraferGrunt(w, def, StraferConfig{})
	a.State, b.State = StraferStrafing, StraferStrafing
	a.Pos.X, a.Pos.Y = 400, 300
	b.Pos.X, b.Pos.Y = 410, 300

	if !a.OnEnemyCollision(b) {
		t.Fatal("Expected first overlap to reverse the grunt")
	}
	if a.StrafeDirection != -1 {
		t.Errorf("Expected direction -1, got %d", a.StrafeDirection)
	}
	if a.OnEnemyCollision(b) {
		t.Error("Expected sustained overlap to be ignored")
	}

	b.Pos.X = 1000
	a.pruneOverlaps()
	b.Pos.X = 410
	if !a.OnEnemyCollision(b) {
		t.Error("Expected a new overlap after separation to reverse again")
	}
}

func TestGruntDeathCallbacksFireOnce(t *testing.T) {
	w := newTestWorld()
	var kills []event.EnemyKilledData
	w.Dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		kills = append(kills, e.Data.(event.EnemyKilledData))
	}))

	def := defs.EnemyDefs[defs.SpinnerGrunt]
	calls := 0
	g := NewSpinnerGrunt(w, def, SpinnerConfig{Health: 10, Callbacks: []func(){func() { calls++ }}, Special: true})
	w.AllEnemies.Add(g)
	w.Spinners.Add(g)

	if g.TakeDamage(4) {
		t.Error("Expected grunt to survive the first hit")
	}
	if !g.TakeDamage(6) {
		t.Error("Expected grunt to die exactly when health reaches 0")
	}
	g.TakeDamage(6)
	g.Die()

	if calls != 1 {
		t.Errorf("Expected death callback once, got %d", calls)
	}
	if len(kills) != 1 || !kills[0].SpecialEvent {
		t.Errorf("Expected one special EnemyKilled event, got %+v", kills)
	}
	for _, grp := range []*Group{w.AllSprites, w.AllEnemies, w.Spinners} {
		if grp.Has(g.ID()) {
			t.Errorf("Expected grunt to be absent from %s", grp.Name())
		}
	}
	if w.Kills != 1 || w.Score != def.Score {
		t.Errorf("Expected 1 kill and score %d, got %d and %d", def.Score, w.Kills, w.Score)
	}
}

func TestDeathCleanupSurvivesPanickingCallback(t *testing.T) {
	w := newTestWorld()
	g := NewSpinnerGrunt(w, defs.EnemyDefs[defs.SpinnerGrunt], SpinnerConfig{Health: 1})
	w.Spinners.Add(g)
	removed := 0
	w.Spinners.OnRemove(func(Entity) { removed++ })
	g.AddDeathCallback(func() { panic("boom") })

	func() {
		defer func() { recover() }()
		g.TakeDamage(1)
	}()
	if g.Alive() || w.Spinners.Has(g.ID()) {
		t.Error("Expected grunt to be removed despite the panic")
	}
	if removed != 1 {
		t.Errorf("Expected remove hook once, got %d", removed)
	}
}

func TestSpinnerStopsAndRotates(t *testing.T) {
	w := newTestWorld()
	def := defs.EnemyDefs[defs.SpinnerGrunt]
	g := NewSpinnerGrunt(w, def, SpinnerConfig{Spawn: &utils.Point{X: 300, Y: 400}})
	if g.Quadrant != defs.SideLeft || g.Pos.X != -100 {
		t.Fatalf("Expected left spawn at x=-100, got %s at %v", g.Quadrant, g.Pos.X)
	}
	if g.Attack() != 0 {
		t.Error("Expected no attack while moving to position")
	}
	for i := 0; i < 200 && g.Transitioning(); i++ {
		g.Update(&UpdateContext{Delta: 1.0 / 60})
	}
	if g.Pos.X != 300 || g.Pos.Y != 400 {
		t.Errorf("Expected stop at (300, 400), got (%v, %v)", g.Pos.X, g.Pos.Y)
	}
	before := g.Rotation()
	g.Update(&UpdateContext{Delta: 1.0 / 60})
	if got := g.Rotation(); got != utils.NormalizeDegrees(before-def.RotationAmount) {
		t.Errorf("Expected rotation %v, got %v", utils.NormalizeDegrees(before-def.RotationAmount), got)
	}
}

func TestUpgradeExpires(t *testing.T) {
	w := newTestWorld()
	def := defs.UpgradeDefs[defs.SmallHealth]
	u := NewUpgrade(w, def, 300, 300)

	ctx := &UpdateContext{Delta: 0.5}
	for i := 0; i < 9; i++ {
		u.Update(ctx)
	}
	if !u.Expiring {
		t.Error("Expected upgrade to be expiring after 4.5 s")
	}
	if !u.Alive() {
		t.Fatal("Expected upgrade to be alive before its TTL")
	}
	for i := 0; i < 6; i++ {
		u.Update(ctx)
	}
	if u.Alive() {
		t.Error("Expected upgrade to disappear after its TTL")
	}
}

func TestUpgradeWithoutDeltaPanics(t *testing.T) {
	w := newTestWorld()
	u := NewUpgrade(w, defs.UpgradeDefs[defs.MaxHealth], 300, 300)
	expectPrecondition(t, func() { u.Update(nil) })
	expectPrecondition(t, func() { u.Update(&UpdateContext{}) })
}

func TestUpgradeCollectHealsPlayer(t *testing.T) {
	w := newTestWorld()
	p, err := NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	p.HP.Value = 2
	u := NewUpgrade(w, defs.UpgradeDefs[defs.MaxHealth], p.Pos.X, p.Pos.Y)
	u.Collect(p)
	if p.Health() != p.MaxHealth() {
		t.Errorf("Expected health capped at %d, got %d", p.MaxHealth(), p.Health())
	}
	if u.Alive() {
		t.Error("Expected collected upgrade to be removed")
	}
}

func TestPlayerDodges(t *testing.T) {
	w := newTestWorld()
	p, err := NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	kind := defs.ProjectileKinds[defs.Accidental]
	hit := NewProjectile(w, ProjectileConfig{Kind: kind, Variant: 1, Angle: 270, X: p.Pos.X, Y: p.Pos.Y, Scale: 1})
	miss := NewProjectile(w, ProjectileConfig{Kind: kind, Angle: 270, X: p.Pos.X + 5, Y: p.Pos.Y, Scale: 1})
	p.AddProjectilesInRange(hit.ID(), miss.ID())

	p.RegisterHit(hit)
	hit.Kill()
	miss.Pos.X = 5000
	if got := p.ResolveDodges(); got != 1 {
		t.Errorf("Expected 1 dodge, got %d", got)
	}
}

func TestPlayerInvincibleTakesNoDamage(t *testing.T) {
	w := newTestWorld()
	w.Settings.PlayerInvincible = true
	p, err := NewPlayer(w, defs.Player)
	if err != nil {
		t.Fatalf("Unexpected player error: %v", err)
	}
	if p.TakeDamage(100) || p.Health() != p.MaxHealth() {
		t.Errorf("Expected invincible player to keep %d health, got %d", p.MaxHealth(), p.Health())
	}
}

func TestSideBarFlashesThenDies(t *testing.T) {
	w := newTestWorld()
	calls := 0
	b, err := NewSideBar(w, defs.SideLeft, func() { calls++ })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r := b.Bounds(); r.Left() != 0 {
		t.Errorf("Expected left bar at x=0, got %v", r.Left())
	}
	for i := 0; i < 200; i++ {
		b.Update(&UpdateContext{Delta: 1.0 / 60})
	}
	if b.Alive() {
		t.Error("Expected side bar to expire")
	}
	if calls != 1 {
		t.Errorf("Expected callback once, got %d", calls)
	}

	if _, err := NewSideBar(w, defs.Side("middle")); !errors.Is(err, defs.ErrUnsupportedVariant) {
		t.Errorf("Expected ErrUnsupportedVariant, got %v", err)
	}
}

func TestDecorFallsOffScreen(t *testing.T) {
	w := newTestWorld()
	d := NewNote(w, false)
	for i := 0; i < 1000 && d.Alive(); i++ {
		d.Update(&UpdateContext{Delta: 1.0 / 60})
	}
	if d.Alive() {
		t.Error("Expected note to be removed below the screen")
	}
}

func TestRenderablesOrderedByLayer(t *testing.T) {
	w := newTestWorld()
	NewNote(w, true)
	NewUpgrade(w, defs.UpgradeDefs[defs.SmallHealth], 100, 100)
	NewStaff(w)
	items := w.Renderables()
	for i := 1; i < len(items); i++ {
		if items[i-1].Layer > items[i].Layer {
			t.Fatalf("Expected ascending layers, got %d before %d", items[i-1].Layer, items[i].Layer)
		}
	}
}
