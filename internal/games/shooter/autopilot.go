package shooter

import (
	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// Pilot decides the input for one tick from a read-only snapshot.
type Pilot interface {
	Plan(snap Snapshot, p Params) (delta float64, fire bool)
}

// Autopilot is a deterministic stand-in for a human player, used by the
// headless simulator and by tests. It steers under the lowest enemy and fires
// on a fixed cadence.
type Autopilot struct {
	FireEvery int     // Fire on ticks divisible by this; 0 disables firing
	MaxDelta  float64 // Largest tilt delta reported per tick
}

// Plan returns the tilt delta to report and whether to fire this tick.
func (a Autopilot) Plan(snap Snapshot, p Params) (float64, bool) {
	fire := a.FireEvery > 0 && snap.Tick%uint64(a.FireEvery) == 0 //#nosec G115 -- FireEvery checked positive

	target, ok := lowestEnemy(snap)
	if !ok {
		return 0, fire
	}

	shipCenter := snap.ShipX + p.ShipW/2
	enemyCenter := target.X + p.EnemyW/2
	delta := core.ClampF(enemyCenter-shipCenter, -a.MaxDelta, a.MaxDelta)
	return delta, fire
}

// lowestEnemy returns the enemy closest to the ship row.
func lowestEnemy(snap Snapshot) (EnemyView, bool) {
	if len(snap.Enemies) == 0 {
		return EnemyView{}, false
	}
	lowest := snap.Enemies[0]
	for _, e := range snap.Enemies[1:] {
		if e.Y > lowest.Y {
			lowest = e
		}
	}
	return lowest, true
}

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks    int
	Spawned  int
	Fired    int
	Snapshot Snapshot
}

// RunHeadless drives the game for up to ticks steps without a wall clock.
// An enemy spawns after every spawnEvery ticks, mirroring the ratio of the
// spawn and tick intervals. The run stops early on game over.
func RunHeadless(g *Game, pilot Pilot, ticks, spawnEvery int) RunResult {
	spawnEvery = max(spawnEvery, 1)
	var res RunResult

	in := core.NewInputFrame()
	for res.Ticks < ticks {
		snap := g.Snapshot()
		delta, fire := pilot.Plan(snap, g.Params())
		g.Tilt(delta)

		in.Clear()
		if fire {
			in.Set(core.ActionFire)
			res.Fired++
		}
		result := g.Step(in)
		res.Ticks++

		if result.State.GameOver {
			break
		}
		if res.Ticks%spawnEvery == 0 {
			g.Spawn()
			res.Spawned++
		}
	}

	res.Snapshot = g.Snapshot()
	return res
}
