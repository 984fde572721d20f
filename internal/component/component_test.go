package component

import (
	"testing"

	"hyperlydian/internal/defs"
	"hyperlydian/internal/types"
)

func TestHealthDamageClampsAndDiesOnce(t *testing.T) {
	h := Health{Value: 5, Max: 5}
	if h.Damage(3) {
		t.Errorf("Expected survival after 3 damage")
	}
	if !h.Damage(10) {
		t.Errorf("Expected death on lethal damage")
	}
	if h.Value != 0 {
		t.Errorf("Expected health clamped to 0, got %d", h.Value)
	}
	if h.Damage(1) {
		t.Errorf("Expected no second death transition")
	}
}

func TestHealthHealCapsAtMax(t *testing.T) {
	h := Health{Value: 2, Max: 5}
	h.Heal(10)
	if h.Value != 5 {
		t.Errorf("Expected 5, got %d", h.Value)
	}
}

func TestAnimationRevertsToDefault(t *testing.T) {
	a := Animation{Increment: 0.25}
	a.Start(defs.ImageHit, 1, false)
	finished := 0
	for i := 0; i < 4; i++ {
		if a.Advance() {
			finished++
		}
	}
	if finished != 1 {
		t.Errorf("Expected animation to finish once, got %d", finished)
	}
	if a.State != defs.ImageDefault {
		t.Errorf("Expected default state, got %s", a.State)
	}
	if a.Advance() {
		t.Errorf("Expected inactive animation not to finish again")
	}
}

func TestAlphaFlashCountsIterations(t *testing.T) {
	f := AlphaFlash{Values: []uint8{150, 150, 70, 0, 0}}
	for i := 0; i < 20; i++ {
		f.Advance(0.25)
	}
	if f.Iteration != 1 {
		t.Errorf("Expected 1 full iteration after 20 steps, got %d", f.Iteration)
	}
}

func TestOverlapSet(t *testing.T) {
	var s OverlapSet
	if !s.Add(types.EntityID(3)) {
		t.Errorf("Expected first add to succeed")
	}
	if s.Add(types.EntityID(3)) {
		t.Errorf("Expected repeated add to be rejected")
	}
	s.Prune(func(id types.EntityID) bool { return false })
	if s.Has(3) {
		t.Errorf("Expected pruned partner to be gone")
	}
}
