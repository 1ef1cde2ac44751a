package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-shooter/internal/core"
	"github.com/vovakirdan/tilt-shooter/internal/games/shooter"
	"github.com/vovakirdan/tilt-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

The arrow keys tilt a virtual device; the ship drifts while it is tilted.

Controls:
  Left/A     - Tilt left
  Right/D    - Tilt right
  Down/S     - Level the device
  Space/Up   - Fire
  P/Esc      - Pause
  R          - Play again (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  shooter play
  shooter play --seed 42
  shooter play --config ./my-shooter.yaml --log ./shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()

	// The TUI owns the terminal, so only log when asked to.
	logger, closeLog := openLogger("shooter", nil)
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if err := tui.Run(shooter.New(gameCfg), rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
