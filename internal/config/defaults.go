package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration. It matches the
// embedded defaults/shooter.yaml.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  400,
			Height: 800,
		},
		Ship: ShipConfig{
			Width:       50,
			Height:      50,
			Sensitivity: 30,
		},
		Bullet: BulletConfig{
			Width:  10,
			Height: 20,
			Speed:  10,
		},
		Enemy: EnemyConfig{
			Width:  40,
			Height: 40,
			Speed:  5,
			MaxVX:  3,
			Kinds:  []string{"alien", "asteroid", "ufo"},
		},
		Timing: Timing{
			Tick:   100 * time.Millisecond,
			Spawn:  1500 * time.Millisecond,
			Sensor: 100 * time.Millisecond,
		},
		Input: InputConfig{
			TiltStep: 0.25,
			MaxTilt:  1.0,
		},
		Gameplay: GameplayConfig{
			FreezeShipOnGameOver: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
