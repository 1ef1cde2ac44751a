package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseShooter(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded YAML and DefaultShooterConfig differ:\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadShooterFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadShooterCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  width: 600\ntiming:\n  spawn: 2s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.World.Width != 600 {
		t.Errorf("world.width = %v, expected 600", cfg.World.Width)
	}
	if cfg.Timing.Spawn != 2*time.Second {
		t.Errorf("timing.spawn = %v, expected 2s", cfg.Timing.Spawn)
	}
	// Untouched keys keep their defaults
	if cfg.World.Height != 800 || cfg.Ship.Width != 50 || cfg.Timing.Tick != 100*time.Millisecond {
		t.Errorf("unspecified keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadShooterUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".tilt-shooter", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shooter.yaml"), []byte("bullet:\n  speed: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Bullet.Speed != 15 {
		t.Errorf("bullet.speed = %v, expected 15 from user config", cfg.Bullet.Speed)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadShooter(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed custom config should fail to parse, got %v", err)
	}
}

func TestLoadShooterTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[enemy]\nspeed = 7.5\nmax_vx = 2\n\n[timing]\nspawn = \"3s\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Enemy.Speed != 7.5 || cfg.Enemy.MaxVX != 2 {
		t.Errorf("enemy = %+v, expected speed 7.5 and max_vx 2", cfg.Enemy)
	}
	if cfg.Timing.Spawn != 3*time.Second {
		t.Errorf("timing.spawn = %v, expected 3s", cfg.Timing.Spawn)
	}
	if cfg.Enemy.Width != 40 || len(cfg.Enemy.Kinds) != 3 {
		t.Errorf("unspecified keys should keep defaults, got %+v", cfg.Enemy)
	}
}

func TestLoadShooterLocalTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("[gameplay]\nfreeze_ship_on_game_over = false\n")
	if err := os.WriteFile(filepath.Join("configs", "shooter.toml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Gameplay.FreezeShipOnGameOver {
		t.Error("local shooter.toml should disable freeze_ship_on_game_over")
	}
}

func TestLoadShooterBadTOML(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[world\nwidth = "), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadShooter(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed TOML config should fail to parse, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		field  string
	}{
		{"zero world width", func(c *ShooterConfig) { c.World.Width = 0 }, "world.width"},
		{"negative world height", func(c *ShooterConfig) { c.World.Height = -1 }, "world.height"},
		{"ship wider than world", func(c *ShooterConfig) { c.Ship.Width = 500 }, "ship.width"},
		{"zero bullet speed", func(c *ShooterConfig) { c.Bullet.Speed = 0 }, "bullet.speed"},
		{"zero enemy height", func(c *ShooterConfig) { c.Enemy.Height = 0 }, "enemy dimensions"},
		{"negative max vx", func(c *ShooterConfig) { c.Enemy.MaxVX = -3 }, "enemy.max_vx"},
		{"two kinds", func(c *ShooterConfig) { c.Enemy.Kinds = []string{"a", "b"} }, "enemy.kinds"},
		{"zero tick", func(c *ShooterConfig) { c.Timing.Tick = 0 }, "timing.tick"},
		{"spawn faster than tick", func(c *ShooterConfig) { c.Timing.Spawn = 50 * time.Millisecond }, "timing.spawn"},
		{"zero tilt step", func(c *ShooterConfig) { c.Input.TiltStep = 0 }, "input.tilt_step"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %q, got %v", tc.field, err)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.World.Width = 0
	cfg.Bullet.Speed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"world.width", "bullet.speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got %v", want, err)
		}
	}
}

func TestSpawnEveryTicks(t *testing.T) {
	tests := []struct {
		tick, spawn time.Duration
		expected    int
	}{
		{100 * time.Millisecond, 1500 * time.Millisecond, 15},
		{100 * time.Millisecond, 150 * time.Millisecond, 1},
		{100 * time.Millisecond, 50 * time.Millisecond, 1},
		{0, time.Second, 1},
	}

	for _, tc := range tests {
		got := Timing{Tick: tc.tick, Spawn: tc.spawn}.SpawnEveryTicks()
		if got != tc.expected {
			t.Errorf("SpawnEveryTicks(tick=%v, spawn=%v) = %d, expected %d", tc.tick, tc.spawn, got, tc.expected)
		}
	}
}

func TestDefaultYAMLIsDocumented(t *testing.T) {
	// The dump printed by `shooter config` must round-trip through yaml.v3.
	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(DefaultYAML())).Decode(&node); err != nil {
		t.Fatalf("embedded YAML should decode: %v", err)
	}
	if !bytes.Contains(DefaultYAML(), []byte("freeze_ship_on_game_over")) {
		t.Error("embedded YAML should document freeze_ship_on_game_over")
	}
}
