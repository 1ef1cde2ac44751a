package shooter

import (
	"slices"

	"github.com/vovakirdan/tilt-shooter/internal/config"
)

// Params are the fixed dimensions and per-tick speeds of a session,
// all in world units.
type Params struct {
	WorldW, WorldH float64

	ShipW, ShipH float64

	BulletW, BulletH float64
	BulletSpeed      float64

	EnemyW, EnemyH float64
	EnemySpeed     float64
	EnemyMaxVX     float64

	KindNames []string // Display names indexed by Kind
}

// ParamsFromConfig extracts simulation parameters from a loaded config.
func ParamsFromConfig(cfg config.ShooterConfig) Params {
	return Params{
		WorldW:      cfg.World.Width,
		WorldH:      cfg.World.Height,
		ShipW:       cfg.Ship.Width,
		ShipH:       cfg.Ship.Height,
		BulletW:     cfg.Bullet.Width,
		BulletH:     cfg.Bullet.Height,
		BulletSpeed: cfg.Bullet.Speed,
		EnemyW:      cfg.Enemy.Width,
		EnemyH:      cfg.Enemy.Height,
		EnemySpeed:  cfg.Enemy.Speed,
		EnemyMaxVX:  cfg.Enemy.MaxVX,
		KindNames:   slices.Clone(cfg.Enemy.Kinds),
	}
}

// KindName returns the configured display name of an enemy kind, or its
// short label when none is configured.
func (p Params) KindName(k Kind) string {
	if k >= 0 && int(k) < len(p.KindNames) {
		return p.KindNames[k]
	}
	return k.String()
}

// ShipMaxX is the largest legal ship x.
func (p Params) ShipMaxX() float64 {
	return p.WorldW - p.ShipW
}

// State is everything one tick reads and writes.
type State struct {
	Ship     Ship
	Bullets  []Bullet
	Enemies  []Enemy
	Score    int
	GameOver bool
	Tick     uint64
}

// InitialState returns a fresh session: ship centered on the bottom edge,
// empty field, zero score.
func InitialState(p Params) State {
	return State{
		Ship: Ship{
			X:      p.ShipMaxX() / 2,
			Y:      p.WorldH - p.ShipH,
			Width:  p.ShipW,
			Height: p.ShipH,
		},
		Bullets: []Bullet{},
		Enemies: []Enemy{},
	}
}

// Advance computes the state one tick later. Motion runs before collision so
// pairs that only overlap after moving are caught in the same tick. A lost
// game is returned unchanged. The input state's slices are never modified.
func Advance(s State, p Params) State {
	if s.GameOver {
		return s
	}

	bullets := MoveBullets(s.Bullets, p.BulletSpeed)
	enemies := MoveEnemies(s.Enemies, p.EnemySpeed, p.WorldW, p.WorldH)
	res := Resolve(s.Ship, bullets, enemies)

	next := s
	next.Bullets = res.Bullets
	next.Enemies = res.Enemies
	next.Score += res.Killed
	next.GameOver = res.ShipHit
	next.Tick++
	return next
}
