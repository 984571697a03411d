package systems

import (
	"testing"

	"github.com/automoto/slingfort/components"
	"github.com/automoto/slingfort/physics"
	"github.com/automoto/slingfort/systems/factory"
)

func TestCollisionDamageDirections(t *testing.T) {
	tests := []struct {
		name           string
		speedA, speedB float64
		wantA, wantB   bool // survives
	}{
		{"neither", 100, 100, true, true},
		{"a damages b", 1000, 0, true, false},
		{"b damages a", 0, 1000, false, true},
		{"both", 1000, 1000, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, blocks := newArena(t, block(800, 300), block(1200, 300))
			a, b := blocks[0], blocks[1]

			OnCollisionStart(e, []physics.Pair{{
				A: bodyOf(a), B: bodyOf(b),
				SpeedA: tt.speedA, SpeedB: tt.speedB,
			}})

			if a.Valid() != tt.wantA || b.Valid() != tt.wantB {
				t.Fatalf("survivors a=%v b=%v, want a=%v b=%v", a.Valid(), b.Valid(), tt.wantA, tt.wantB)
			}
		})
	}
}

func TestDamageQueuedOncePerTick(t *testing.T) {
	e, blocks := newArena(t, block(600, 300), block(1000, 300), block(1400, 300))
	left, middle, right := bodyOf(blocks[0]), bodyOf(blocks[1]), bodyOf(blocks[2])

	OnCollisionStart(e, []physics.Pair{
		{A: left, B: middle, SpeedA: 5000},
		{A: right, B: middle, SpeedA: 5000},
	})

	f := components.Fortress.Get(components.Fortress.MustFirst(e.World))
	if f.Destroyed != 1 {
		t.Fatalf("destroyed = %d, want 1", f.Destroyed)
	}
	if len(f.DamageQueue) != 0 || len(f.Queued) != 0 {
		t.Fatalf("damage queue not drained: %d queued", len(f.DamageQueue))
	}
	if blocks[1].Valid() || !blocks[0].Valid() || !blocks[2].Valid() {
		t.Fatalf("wrong entities removed")
	}
	if f.Collisions != 2 {
		t.Fatalf("collisions = %d, want 2", f.Collisions)
	}
}

func TestGroundNeverDamaged(t *testing.T) {
	e, blocks := newArena(t, block(1000, 300))
	ground := factory.CreateGround(e, 2000, 720)

	OnCollisionStart(e, []physics.Pair{{
		A: bodyOf(blocks[0]), B: bodyOf(ground),
		SpeedA: 1e9, SpeedB: 1e9,
	}})

	if !ground.Valid() {
		t.Fatalf("ground destroyed")
	}
	if !blocks[0].Valid() {
		t.Fatalf("static ground damaged a block")
	}
}

func TestUpdateFortressCullsOffPlayfield(t *testing.T) {
	e, blocks := newArena(t, block(1000, 300), block(1200, 300))
	gone := blocks[0]
	bodyOf(gone).SetPosition(physics.Vector{X: 2200, Y: 300})

	UpdateFortress(e)
	if !components.Entity.Get(gone).MarkedForRemoval {
		t.Fatalf("block past the right edge not marked")
	}
	UpdateFortress(e)

	if gone.Valid() {
		t.Fatalf("culled block still valid")
	}
	if !blocks[1].Valid() {
		t.Fatalf("on-screen block culled")
	}
	f := components.Fortress.Get(components.Fortress.MustFirst(e.World))
	if len(f.Entities) != 1 {
		t.Fatalf("fortress owns %d entities, want 1", len(f.Entities))
	}
}

func TestRemainingTargets(t *testing.T) {
	e := newLevel(t, 2)
	if got := RemainingTargets(e); got != 3 {
		t.Fatalf("remaining targets = %d, want 3", got)
	}
	if got := RemainingBlocks(e); got != 6 {
		t.Fatalf("remaining blocks = %d, want 6", got)
	}

	f := components.Fortress.Get(components.Fortress.MustFirst(e.World))
	for _, entry := range f.Entities {
		if components.Entity.Get(entry).Kind == components.KindTarget {
			MarkForRemoval(entry)
		}
	}
	UpdateFortress(e)

	if !HasWon(e) {
		t.Fatalf("level not won with every target removed")
	}
}
