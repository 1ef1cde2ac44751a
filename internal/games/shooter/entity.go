// Package shooter implements a tilt-controlled vertical shooter.
// The player steers a ship along the bottom edge and fires upward at enemies
// that drift down the field, bouncing off the side walls. The simulation
// advances in fixed ticks and has no terminal dependencies.
package shooter

import "github.com/vovakirdan/tilt-shooter/internal/core"

// Kind is the cosmetic variety of an enemy. It has no gameplay effect.
type Kind int

const (
	KindA Kind = iota // alien
	KindB             // asteroid
	KindC             // ufo
)

// kindCount is the number of kinds the spawner draws from.
const kindCount = 3

// String returns the kind's short label.
func (k Kind) String() string {
	switch k {
	case KindA:
		return "A"
	case KindB:
		return "B"
	case KindC:
		return "C"
	default:
		return "?"
	}
}

// Ship is the player's ship. Only X changes during play.
type Ship struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the ship's collision box.
func (s Ship) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.Width, s.Height)
}

// CenterX returns the horizontal center of the ship.
func (s Ship) CenterX() float64 {
	cx, _ := s.Rect().Center()
	return cx
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	ID            uint64
	X, Y          float64
	Width, Height float64
}

// Rect returns the bullet's collision box.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Enemy descends one step per tick and drifts sideways by VX.
type Enemy struct {
	ID            uint64
	X, Y          float64
	VX            float64
	Width, Height float64
	Kind          Kind
}

// Rect returns the enemy's collision box.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// idGen hands out entity ids. Bullets and enemies share one sequence.
type idGen struct {
	last uint64
}

func (g *idGen) Next() uint64 {
	g.last++
	return g.last
}
