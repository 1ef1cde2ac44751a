package shooter

import (
	"math/rand"
	"testing"
)

func TestMoveBullets(t *testing.T) {
	in := []Bullet{
		bulletAt(1, 100, 100), // -> 90, survives
		bulletAt(2, 100, 10),  // -> 0, culled
		bulletAt(3, 100, 5),   // -> -5, culled
		bulletAt(4, 100, 11),  // -> 1, survives
	}

	out := MoveBullets(in, 10)

	if len(out) != 2 {
		t.Fatalf("expected 2 surviving bullets, got %d: %+v", len(out), out)
	}
	if out[0].ID != 1 || out[0].Y != 90 {
		t.Errorf("bullet 1 should be at y=90, got %+v", out[0])
	}
	if out[1].ID != 4 || out[1].Y != 1 {
		t.Errorf("bullet 4 should be at y=1, got %+v", out[1])
	}
	if out[0].X != 100 {
		t.Errorf("bullet x must not change, got %v", out[0].X)
	}
	if in[0].Y != 100 {
		t.Errorf("input slice must not be modified, got y=%v", in[0].Y)
	}
}

func TestMoveEnemies(t *testing.T) {
	const worldW, worldH = 400.0, 800.0

	tests := []struct {
		name   string
		in     Enemy
		wantX  float64
		wantVX float64
		wantY  float64
	}{
		{"free drift", enemyAt(1, 100, 0, 2), 102, 2, 5},
		{"right wall reflects", enemyAt(1, worldW-40-1, 0, 3), worldW - 40 - 1 - 3, -3, 5},
		{"left wall reflects", enemyAt(1, 1, 0, -3), 4, 3, 5},
		{"exactly at right limit", enemyAt(1, worldW-40-3, 0, 3), worldW - 40, 3, 5},
		{"large overshoot reflects once", enemyAt(1, 0, 0, -50), 50, 50, 5},
		{"spawned above field", enemyAt(1, 10, -40, 0), 10, 0, -35},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := MoveEnemies([]Enemy{tc.in}, 5, worldW, worldH)
			if len(out) != 1 {
				t.Fatalf("enemy should survive, got %d", len(out))
			}
			got := out[0]
			if got.X != tc.wantX || got.VX != tc.wantVX || got.Y != tc.wantY {
				t.Errorf("got x=%v vx=%v y=%v, expected x=%v vx=%v y=%v",
					got.X, got.VX, got.Y, tc.wantX, tc.wantVX, tc.wantY)
			}
		})
	}
}

func TestMoveEnemiesCullsAtBottom(t *testing.T) {
	in := []Enemy{
		enemyAt(1, 10, 795, 0), // -> 800, culled
		enemyAt(2, 10, 794, 0), // -> 799, survives
		enemyAt(3, 10, 900, 0), // already gone
	}

	out := MoveEnemies(in, 5, 400, 800)

	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("only enemy 2 should survive, got %+v", out)
	}
	if in[0].Y != 795 {
		t.Error("input slice must not be modified")
	}
}

func TestEnemyStaysWithinOneReflectionStep(t *testing.T) {
	p := testParams()
	rng := rand.New(rand.NewSource(7))
	sp := NewSpawner(rng, p)

	enemies := make([]Enemy, 0, 50)
	for i := range 50 {
		e := sp.Next(uint64(i + 1))
		e.Y = 0
		enemies = append(enemies, e)
	}

	lo, hi := -p.EnemyMaxVX, p.WorldW-p.EnemyW+p.EnemyMaxVX
	for tick := range 150 {
		enemies = MoveEnemies(enemies, p.EnemySpeed, p.WorldW, p.WorldH)
		for _, e := range enemies {
			if e.X < lo || e.X > hi {
				t.Fatalf("tick %d: enemy %d at x=%v outside [%v, %v]", tick, e.ID, e.X, lo, hi)
			}
			if e.Y >= p.WorldH {
				t.Fatalf("tick %d: enemy %d below the field at y=%v", tick, e.ID, e.Y)
			}
		}
	}
}
