package shooter

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tilt-shooter/internal/config"
)

func TestInitialState(t *testing.T) {
	p := testParams()
	s := InitialState(p)

	if s.Ship.X != (p.WorldW-p.ShipW)/2 {
		t.Errorf("ship x = %v, expected %v", s.Ship.X, (p.WorldW-p.ShipW)/2)
	}
	if s.Ship.Y != p.WorldH-p.ShipH {
		t.Errorf("ship y = %v, expected flush with bottom %v", s.Ship.Y, p.WorldH-p.ShipH)
	}
	if len(s.Bullets) != 0 || len(s.Enemies) != 0 || s.Score != 0 || s.GameOver || s.Tick != 0 {
		t.Errorf("initial state should be empty, got %+v", s)
	}
}

func TestAdvanceDetectsHitsAfterMotion(t *testing.T) {
	p := testParams()
	s := InitialState(p)
	// Before moving: bullet spans y 74..94, enemy 20..60, no overlap.
	// After moving: bullet 64..84, enemy 25..65, overlap.
	s.Bullets = []Bullet{bulletAt(1, 95, 74)}
	s.Enemies = []Enemy{enemyAt(2, 90, 20, 0)}

	next := Advance(s, p)

	if next.Score != 1 {
		t.Errorf("score = %d, expected 1", next.Score)
	}
	if len(next.Bullets) != 0 || len(next.Enemies) != 0 {
		t.Errorf("hit pair should be removed, got %+v / %+v", next.Bullets, next.Enemies)
	}
	if next.Tick != 1 {
		t.Errorf("tick = %d, expected 1", next.Tick)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	p := testParams()
	s := InitialState(p)
	s.Bullets = []Bullet{bulletAt(1, 95, 74), bulletAt(3, 300, 400)}
	s.Enemies = []Enemy{enemyAt(2, 90, 20, 1)}

	before := cloneState(s)
	Advance(s, p)

	if !reflect.DeepEqual(s, before) {
		t.Errorf("Advance modified its input:\nbefore %+v\nafter  %+v", before, s)
	}
}

func TestAdvanceShipCollisionEndsGame(t *testing.T) {
	p := testParams()
	s := InitialState(p) // ship at (175, 750)
	s.Score = 4
	s.Enemies = []Enemy{enemyAt(1, 180, 710, 0), enemyAt(2, 10, 100, 0)}
	s.Bullets = []Bullet{bulletAt(3, 15, 140)} // would hit enemy 2 after moving

	next := Advance(s, p)

	if !next.GameOver {
		t.Fatal("enemy reaching the ship should end the game")
	}
	if next.Score != 4 {
		t.Errorf("score must not change on the losing tick, got %d", next.Score)
	}
	if len(next.Enemies) != 2 || next.Enemies[0].Y != 715 {
		t.Errorf("enemies keep their post-motion positions, got %+v", next.Enemies)
	}
	if len(next.Bullets) != 1 || next.Bullets[0].Y != 130 {
		t.Errorf("bullets keep their post-motion positions, got %+v", next.Bullets)
	}
}

func TestAdvanceIsFrozenAfterGameOver(t *testing.T) {
	p := testParams()
	s := InitialState(p)
	s.GameOver = true
	s.Score = 9
	s.Tick = 42
	s.Bullets = []Bullet{bulletAt(1, 50, 300)}
	s.Enemies = []Enemy{enemyAt(2, 50, 100, 3)}

	next := Advance(s, p)

	if !reflect.DeepEqual(next, s) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", s, next)
	}
}

func cloneState(s State) State {
	c := s
	c.Bullets = append([]Bullet(nil), s.Bullets...)
	c.Enemies = append([]Enemy(nil), s.Enemies...)
	return c
}

func TestParamsKindName(t *testing.T) {
	p := testParams()

	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindA, "alien"},
		{KindB, "asteroid"},
		{KindC, "ufo"},
		{Kind(7), "?"},
	}
	for _, tc := range tests {
		if got := p.KindName(tc.kind); got != tc.expected {
			t.Errorf("KindName(%d) = %q, expected %q", tc.kind, got, tc.expected)
		}
	}

	p.KindNames = nil
	if got := p.KindName(KindB); got != "B" {
		t.Errorf("KindName without names = %q, expected B", got)
	}
}

func TestParamsFromConfigCopiesKindNames(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	p := ParamsFromConfig(cfg)

	cfg.Enemy.Kinds[0] = "changed"
	if got := p.KindName(KindA); got != "alien" {
		t.Errorf("params should not alias the config slice, got %q", got)
	}
}
