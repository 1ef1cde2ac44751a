// Package config provides YAML and TOML configuration loading and validation
// for the shooter.
package config

import "time"

// ShooterConfig contains all tunables for the shooter simulation and its
// terminal adapters.
type ShooterConfig struct {
	World    WorldConfig    `yaml:"world" toml:"world"`
	Ship     ShipConfig     `yaml:"ship" toml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet" toml:"bullet"`
	Enemy    EnemyConfig    `yaml:"enemy" toml:"enemy"`
	Timing   Timing         `yaml:"timing" toml:"timing"`
	Input    InputConfig    `yaml:"input" toml:"input"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
}

// WorldConfig defines the simulated play field.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	Sensitivity float64 `yaml:"sensitivity" toml:"sensitivity"` // Tilt reading multiplier
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"` // Upward distance per tick
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width  float64  `yaml:"width" toml:"width"`
	Height float64  `yaml:"height" toml:"height"`
	Speed  float64  `yaml:"speed" toml:"speed"`   // Downward distance per tick
	MaxVX  float64  `yaml:"max_vx" toml:"max_vx"` // Spawned vx is uniform in [-MaxVX, MaxVX]
	Kinds  []string `yaml:"kinds" toml:"kinds"`   // Cosmetic names for the three enemy kinds
}

// Timing holds the fixed intervals of the three repeating activities.
type Timing struct {
	Tick   time.Duration `yaml:"tick" toml:"tick"`
	Spawn  time.Duration `yaml:"spawn" toml:"spawn"`
	Sensor time.Duration `yaml:"sensor" toml:"sensor"`
}

// SpawnEveryTicks expresses the spawn interval in whole ticks, for drivers
// that advance the simulation without a wall clock. Never less than 1.
func (t Timing) SpawnEveryTicks() int {
	if t.Tick <= 0 {
		return 1
	}
	return max(int(t.Spawn/t.Tick), 1)
}

// InputConfig tunes the virtual tilt sensor used in the terminal.
type InputConfig struct {
	TiltStep float64 `yaml:"tilt_step" toml:"tilt_step"` // Reading change per key press
	MaxTilt  float64 `yaml:"max_tilt" toml:"max_tilt"`   // Reading is clamped to [-MaxTilt, MaxTilt]
}

// GameplayConfig holds behavioral switches.
type GameplayConfig struct {
	// FreezeShipOnGameOver ignores tilt input once the game is lost.
	FreezeShipOnGameOver bool `yaml:"freeze_ship_on_game_over" toml:"freeze_ship_on_game_over"`
}
