package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tilt-shooter/internal/config"
	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// Game owns the session state and is the only thing that mutates it.
// Adapters drive it through Tick, Spawn, Tilt, Fire and Reset, and read it
// back through Snapshot, State and Render.
type Game struct {
	cfg        config.ShooterConfig
	params     Params
	state      State
	spawner    *Spawner
	ids        idGen
	freezeShip bool
	runtime    core.RuntimeConfig
}

// New creates a game from a validated configuration.
// Call Reset before the first tick.
func New(cfg config.ShooterConfig) *Game {
	p := ParamsFromConfig(cfg)
	g := &Game{
		cfg:        cfg,
		params:     p,
		freezeShip: cfg.Gameplay.FreezeShipOnGameOver,
		runtime:    core.DefaultConfig(),
	}
	g.spawner = NewSpawner(rand.New(rand.NewSource(0)), p)
	g.state = InitialState(p)
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tilt Shooter"
}

// Params returns the session's simulation parameters.
func (g *Game) Params() Params {
	return g.params
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset starts a new session: ship centered, no bullets or enemies, zero
// score, game active. The spawner is reseeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.state = InitialState(g.params)
	g.spawner.SetRand(rand.New(rand.NewSource(cfg.Seed)))
}

// SetRand replaces the spawn random source until the next Reset.
func (g *Game) SetRand(rng Rand) {
	g.spawner.SetRand(rng)
}

// Tick advances the simulation by one fixed step. It is a no-op once the
// game is over.
func (g *Game) Tick() core.StepResult {
	g.state = Advance(g.state, g.params)
	return core.StepResult{State: g.State()}
}

// Spawn adds one enemy above the field. It is a no-op once the game is over.
func (g *Game) Spawn() {
	if g.state.GameOver {
		return
	}
	g.state.Enemies = append(g.state.Enemies, g.spawner.Next(g.ids.Next()))
}

// Tilt moves the ship horizontally by delta, clamped to the field.
// Ignored after game over when the ship is configured to freeze.
func (g *Game) Tilt(delta float64) {
	if g.state.GameOver && g.freezeShip {
		return
	}
	g.state.Ship.X = core.ClampF(g.state.Ship.X+delta, 0, g.params.ShipMaxX())
}

// Fire launches a bullet from the ship's horizontal center, just above the
// ship. It is a no-op once the game is over.
func (g *Game) Fire() {
	if g.state.GameOver {
		return
	}
	p := g.params
	g.state.Bullets = append(g.state.Bullets, Bullet{
		ID:     g.ids.Next(),
		X:      g.state.Ship.X + (p.ShipW-p.BulletW)/2,
		Y:      p.WorldH - p.ShipH - p.BulletH,
		Width:  p.BulletW,
		Height: p.BulletH,
	})
}

// Step applies the frame's discrete actions and advances one tick.
// Restart only takes effect after game over and reuses the last seed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionFire) {
		g.Fire()
	}
	return g.Tick()
}

// State returns the coarse game status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
	}
}

