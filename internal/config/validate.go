package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// EnemyKindCount is the number of cosmetic enemy kinds the game draws from.
const EnemyKindCount = 3

// Validate rejects configurations the simulation cannot run with.
// All violations are reported together.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)

	check(c.Ship.Width > 0 && c.Ship.Height > 0, "ship dimensions must be positive, got %vx%v", c.Ship.Width, c.Ship.Height)
	check(c.Ship.Width <= c.World.Width, "ship.width %v exceeds world.width %v", c.Ship.Width, c.World.Width)
	check(c.Ship.Height <= c.World.Height, "ship.height %v exceeds world.height %v", c.Ship.Height, c.World.Height)
	check(c.Ship.Sensitivity >= 0, "ship.sensitivity must not be negative, got %v", c.Ship.Sensitivity)

	check(c.Bullet.Width > 0 && c.Bullet.Height > 0, "bullet dimensions must be positive, got %vx%v", c.Bullet.Width, c.Bullet.Height)
	check(c.Bullet.Speed > 0, "bullet.speed must be positive, got %v", c.Bullet.Speed)

	check(c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy dimensions must be positive, got %vx%v", c.Enemy.Width, c.Enemy.Height)
	check(c.Enemy.Width <= c.World.Width, "enemy.width %v exceeds world.width %v", c.Enemy.Width, c.World.Width)
	check(c.Enemy.Speed > 0, "enemy.speed must be positive, got %v", c.Enemy.Speed)
	check(c.Enemy.MaxVX >= 0, "enemy.max_vx must not be negative, got %v", c.Enemy.MaxVX)
	check(len(c.Enemy.Kinds) == EnemyKindCount, "enemy.kinds must name exactly %d kinds, got %d", EnemyKindCount, len(c.Enemy.Kinds))

	check(c.Timing.Tick > 0, "timing.tick must be positive, got %v", c.Timing.Tick)
	check(c.Timing.Sensor > 0, "timing.sensor must be positive, got %v", c.Timing.Sensor)
	check(c.Timing.Spawn > c.Timing.Tick, "timing.spawn %v must be slower than timing.tick %v", c.Timing.Spawn, c.Timing.Tick)

	check(c.Input.TiltStep > 0, "input.tilt_step must be positive, got %v", c.Input.TiltStep)
	check(c.Input.MaxTilt > 0, "input.max_tilt must be positive, got %v", c.Input.MaxTilt)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
}
