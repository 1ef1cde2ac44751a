package shooter

import (
	"testing"

	"github.com/vovakirdan/tilt-shooter/internal/config"
	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// testParams mirrors the default configuration.
func testParams() Params {
	return ParamsFromConfig(config.DefaultShooterConfig())
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

// scriptedRand replays fixed values; it panics when exhausted so a test
// notices unexpected draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func enemyAt(id uint64, x, y, vx float64) Enemy {
	return Enemy{ID: id, X: x, Y: y, VX: vx, Width: 40, Height: 40}
}

func bulletAt(id uint64, x, y float64) Bullet {
	return Bullet{ID: id, X: x, Y: y, Width: 10, Height: 20}
}
