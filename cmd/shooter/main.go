// shooter is a tilt-controlled arcade shooter for the terminal.
//
// Usage:
//
//	shooter play        - Play in the terminal
//	shooter simulate    - Run a headless, seeded game and print the outcome
//	shooter serve       - Start SSH server for remote play
//	shooter config      - Print the default configuration
//
// Global flags:
//
//	--config <path> - Load game config from a YAML or TOML file
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write the session log to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-shooter/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Tilt Shooter - Dodge and shoot falling enemies in your terminal",
	Long: `Tilt Shooter is a terminal arcade game. Tilt the (virtual) device to
steer your ship, fire at falling enemies and keep them off your ship.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless seeded game
  serve     - Start SSH server for remote play
  config    - Print the default configuration

Examples:
  shooter
  shooter play --seed 42
  shooter simulate --ticks 5000 --seed 7
  shooter serve --ssh :2222
  shooter config > ~/.tilt-shooter/configs/shooter.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write log output to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads and validates the game configuration, exiting on error.
func loadConfig() config.ShooterConfig {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLogger returns a logger writing to --log, or one writing to fallback.
// The returned function closes the log file.
func openLogger(prefix string, fallback *os.File) (*log.Logger, func()) {
	out, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	if out == nil {
		return nil, closeFn
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn
}
