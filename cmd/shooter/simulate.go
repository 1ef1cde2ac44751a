package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tilt-shooter/internal/core"
	"github.com/vovakirdan/tilt-shooter/internal/games/shooter"
	"github.com/vovakirdan/tilt-shooter/internal/scripting"
)

var (
	flagTicks     int
	flagFireEvery int
	flagRender    bool
	flagPilot     string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless seeded game",
	Long: `Run the game without a terminal UI or wall clock. An autopilot steers
under the lowest enemy and fires on a fixed cadence. Enemies spawn at the
configured spawn/tick ratio.

The same seed and config always produce the same result and hash.

With --pilot, a Lua script decides each tick instead. The script defines
plan(s) and returns the tilt delta and whether to fire. Use --pilot chase
for the bundled example.

Examples:
  shooter simulate
  shooter simulate --ticks 5000 --seed 7
  shooter simulate --fire-every 5 --render
  shooter simulate --pilot ./my-pilot.lua`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 3, "Autopilot fires every N ticks (0 = never)")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
	simulateCmd.Flags().StringVar(&flagPilot, "pilot", "", "Lua pilot script path, or \"chase\" for the bundled one")
}

func runSimulate(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	logger, closeLog := openLogger("simulate", os.Stderr)
	defer closeLog()

	if flagTicks <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be positive")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.DefaultConfig()
	rc.Seed = seed

	game := shooter.New(gameCfg)
	game.Reset(rc)

	maxDelta := gameCfg.Input.MaxTilt * gameCfg.Ship.Sensitivity
	var pilot shooter.Pilot = shooter.Autopilot{
		FireEvery: flagFireEvery,
		MaxDelta:  maxDelta,
	}
	if flagPilot != "" {
		lp, err := loadPilot(flagPilot, maxDelta, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer lp.Close()
		pilot = lp
	}

	started := time.Now()
	res := shooter.RunHeadless(game, pilot, flagTicks, gameCfg.Timing.SpawnEveryTicks())
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", res.Ticks,
		"elapsed", time.Since(started),
	)

	if lp, ok := pilot.(*scripting.Pilot); ok && lp.Err() != nil {
		logger.Warn("pilot stopped early", "error", lp.Err())
	}

	snap := res.Snapshot
	pr := message.NewPrinter(language.English)
	fmt.Printf("Seed:      %d\n", seed)
	pr.Printf("Ticks:     %d\n", res.Ticks)
	pr.Printf("Spawned:   %d\n", res.Spawned)
	pr.Printf("Fired:     %d\n", res.Fired)
	pr.Printf("Score:     %d\n", snap.Score)
	pr.Printf("Game over: %t\n", snap.GameOver)
	fmt.Printf("Hash:      %016x\n", snap.Hash())

	if flagRender {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
}

// loadPilot loads a Lua pilot from a file, or the bundled chase script.
func loadPilot(name string, maxDelta float64, logger *log.Logger) (*scripting.Pilot, error) {
	if name == "chase" {
		return scripting.LoadPilot(scripting.ChaseScript(), maxDelta, logger)
	}
	return scripting.LoadPilotFile(name, maxDelta, logger)
}
