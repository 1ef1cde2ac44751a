package shooter

import "math"

// BulletView is the render-facing view of a bullet.
type BulletView struct {
	ID   uint64
	X, Y float64
}

// EnemyView is the render-facing view of an enemy.
type EnemyView struct {
	ID   uint64
	X, Y float64
	Kind Kind
}

// Snapshot is a read-only copy of the session for renderers and tests.
// Mutating it has no effect on the game.
type Snapshot struct {
	Tick     uint64
	ShipX    float64
	Bullets  []BulletView
	Enemies  []EnemyView
	Score    int
	GameOver bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	bullets := make([]BulletView, len(g.state.Bullets))
	for i, b := range g.state.Bullets {
		bullets[i] = BulletView{ID: b.ID, X: b.X, Y: b.Y}
	}
	enemies := make([]EnemyView, len(g.state.Enemies))
	for i, e := range g.state.Enemies {
		enemies[i] = EnemyView{ID: e.ID, X: e.X, Y: e.Y, Kind: e.Kind}
	}

	return Snapshot{
		Tick:     g.state.Tick,
		ShipX:    g.state.Ship.X,
		Bullets:  bullets,
		Enemies:  enemies,
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, b := range snap.Bullets {
		h = h*31 + b.ID
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
	}
	for _, e := range snap.Enemies {
		h = h*31 + e.ID
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + uint64(e.Kind) //#nosec G115 -- hash computation
	}

	return h
}
