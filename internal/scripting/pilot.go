// Package scripting runs autopilot strategies written in Lua.
//
// A script defines a global function plan(s) that receives the current
// snapshot as a table and returns the tilt delta and whether to fire:
//
//	function plan(s)
//	  return 0, s.tick % 3 == 0
//	end
//
// The table carries tick, score, ship_x, ship_w, ship_h, enemy_w, enemy_h,
// world_w, world_h, and the arrays bullets {id, x, y} and enemies
// {id, x, y, kind}, where kind is the configured name such as "asteroid".
package scripting

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/tilt-shooter/internal/core"
	"github.com/vovakirdan/tilt-shooter/internal/games/shooter"
)

// APIVersion is exposed to scripts as the API_VERSION global.
const APIVersion = 1

//go:embed pilots/chase.lua
var chaseScript string

// ChaseScript returns the bundled example strategy.
func ChaseScript() string {
	return chaseScript
}

// Pilot is a shooter.Pilot backed by a Lua VM.
// Single-goroutine access only.
type Pilot struct {
	vm       *lua.LState
	fn       lua.LValue
	maxDelta float64
	logger   *log.Logger
	err      error
}

// LoadPilot compiles a script from source. Deltas are clamped to
// [-maxDelta, maxDelta] when maxDelta is positive. A nil logger discards output.
func LoadPilot(src string, maxDelta float64, logger *log.Logger) (*Pilot, error) {
	return newPilot(func(vm *lua.LState) error { return vm.DoString(src) }, maxDelta, logger)
}

// LoadPilotFile compiles the script at path.
func LoadPilotFile(path string, maxDelta float64, logger *log.Logger) (*Pilot, error) {
	p, err := newPilot(func(vm *lua.LState) error { return vm.DoFile(path) }, maxDelta, logger)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

func newPilot(load func(*lua.LState) error, maxDelta float64, logger *log.Logger) (*Pilot, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(APIVersion))

	if err := load(vm); err != nil {
		vm.Close()
		return nil, fmt.Errorf("lua: %w", err)
	}

	fn := vm.GetGlobal("plan")
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, errors.New("lua: function plan not defined")
	}

	return &Pilot{vm: vm, fn: fn, maxDelta: maxDelta, logger: logger}, nil
}

// Plan calls the script's plan function. After the first runtime error the
// pilot holds still and never fires; Err reports the error.
func (p *Pilot) Plan(snap shooter.Snapshot, params shooter.Params) (float64, bool) {
	if p.err != nil {
		return 0, false
	}

	if err := p.vm.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    2,
		Protect: true,
	}, p.snapshotTable(snap, params)); err != nil {
		p.err = fmt.Errorf("lua plan: %w", err)
		p.logger.Error("lua plan failed", "tick", snap.Tick, "error", err)
		return 0, false
	}

	delta := float64(lua.LVAsNumber(p.vm.Get(-2)))
	fire := lua.LVAsBool(p.vm.Get(-1))
	p.vm.Pop(2)

	if p.maxDelta > 0 {
		delta = core.ClampF(delta, -p.maxDelta, p.maxDelta)
	}
	return delta, fire
}

// Err returns the first runtime error raised by the script, if any.
func (p *Pilot) Err() error {
	return p.err
}

// Close releases the VM.
func (p *Pilot) Close() {
	p.vm.Close()
}

func (p *Pilot) snapshotTable(snap shooter.Snapshot, params shooter.Params) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("tick", lua.LNumber(snap.Tick))
	t.RawSetString("score", lua.LNumber(snap.Score))
	t.RawSetString("ship_x", lua.LNumber(snap.ShipX))
	t.RawSetString("ship_w", lua.LNumber(params.ShipW))
	t.RawSetString("ship_h", lua.LNumber(params.ShipH))
	t.RawSetString("enemy_w", lua.LNumber(params.EnemyW))
	t.RawSetString("enemy_h", lua.LNumber(params.EnemyH))
	t.RawSetString("world_w", lua.LNumber(params.WorldW))
	t.RawSetString("world_h", lua.LNumber(params.WorldH))

	bullets := p.vm.NewTable()
	for i, b := range snap.Bullets {
		bt := p.vm.NewTable()
		bt.RawSetString("id", lua.LNumber(b.ID))
		bt.RawSetString("x", lua.LNumber(b.X))
		bt.RawSetString("y", lua.LNumber(b.Y))
		bullets.RawSetInt(i+1, bt)
	}
	t.RawSetString("bullets", bullets)

	enemies := p.vm.NewTable()
	for i, e := range snap.Enemies {
		et := p.vm.NewTable()
		et.RawSetString("id", lua.LNumber(e.ID))
		et.RawSetString("x", lua.LNumber(e.X))
		et.RawSetString("y", lua.LNumber(e.Y))
		et.RawSetString("kind", lua.LString(params.KindName(e.Kind)))
		enemies.RawSetInt(i+1, et)
	}
	t.RawSetString("enemies", enemies)

	return t
}
