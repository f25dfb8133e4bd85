package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig  `toml:"simulation"`
	Asteroids  AsteroidsConfig   `toml:"asteroids"`
	Spaceship  SpaceshipConfig   `toml:"spaceship"`
	Weapon     WeaponConfig      `toml:"weapon"`
	Ring       RingConfig        `toml:"ring"`
	Input      InputConfig       `toml:"input"`
	Scripting  ScriptingConfig   `toml:"scripting"`
	Assets     map[string]string `toml:"assets"`
	Logging    LoggingConfig     `toml:"logging"`
}

type SimulationConfig struct {
	TickRate       time.Duration `toml:"tick_rate"`
	BoundaryRadius float64       `toml:"boundary_radius"` // R
	WrapEpsilon    float64       `toml:"wrap_epsilon"`
	Seed           string        `toml:"seed"` // empty = wall clock
}

type AsteroidsConfig struct {
	SpawnInterval      time.Duration `toml:"spawn_interval"`
	DrawRadius         float64       `toml:"draw_radius"`
	SpawnMargin        float64       `toml:"spawn_margin"`         // spawn distance must exceed R * margin
	TargetRadiusFactor float64       `toml:"target_radius_factor"` // aim point within R * factor
	Speed              float64       `toml:"speed"`
	Acceleration       float64       `toml:"acceleration"`
	HealthMin          float64       `toml:"health_min"`
	HealthMax          float64       `toml:"health_max"` // exclusive
	ColliderRadius     float64       `toml:"collider_radius"`
}

type SpaceshipConfig struct {
	StartPosition   [3]float64 `toml:"start_position"`
	Health          float64    `toml:"health"`
	CollisionDamage float64    `toml:"collision_damage"`
	MaxSpeed        float64    `toml:"max_speed"`
	Acceleration    float64    `toml:"acceleration"`   // per-tick velocity impulse
	RotationSpeed   float64    `toml:"rotation_speed"` // rad/s
	RollSpeed       float64    `toml:"roll_speed"`     // rad per tick
	Drag            float64    `toml:"drag"`
	HalfExtents     [3]float64 `toml:"half_extents"`
}

type WeaponConfig struct {
	FireRate        float64       `toml:"fire_rate"` // shots per second
	MissileSpeed    float64       `toml:"missile_speed"`
	ForwardOffset   float64       `toml:"forward_offset"`
	MissileHealth   float64       `toml:"missile_health"`
	MissileDamage   float64       `toml:"missile_damage"`
	MissileRadius   float64       `toml:"missile_radius"`
	MissileLifetime time.Duration `toml:"missile_lifetime"` // 0 = no despawn timer
}

type RingConfig struct {
	Satellites int `toml:"satellites"`
}

type InputConfig struct {
	Keymap string `toml:"keymap"` // YAML file; empty = built-in bindings
}

type ScriptingConfig struct {
	Dir string `toml:"dir"` // Lua scripts; empty = Go formulas only
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when path does
// not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Simulation.TickRate <= 0:
		return errors.New("simulation.tick_rate must be positive")
	case c.Simulation.BoundaryRadius <= 0:
		return errors.New("simulation.boundary_radius must be positive")
	case c.Asteroids.SpawnInterval <= 0:
		return errors.New("asteroids.spawn_interval must be positive")
	case c.Asteroids.HealthMin >= c.Asteroids.HealthMax:
		return fmt.Errorf("asteroids.health_min (%g) must be below health_max (%g)",
			c.Asteroids.HealthMin, c.Asteroids.HealthMax)
	case c.Asteroids.DrawRadius <= c.Simulation.BoundaryRadius*c.Asteroids.SpawnMargin:
		return fmt.Errorf("asteroids.draw_radius (%g) must exceed boundary_radius*spawn_margin (%g)",
			c.Asteroids.DrawRadius, c.Simulation.BoundaryRadius*c.Asteroids.SpawnMargin)
	case c.Weapon.FireRate <= 0:
		return errors.New("weapon.fire_rate must be positive")
	case c.Ring.Satellites < 0:
		return errors.New("ring.satellites must not be negative")
	}
	return nil
}

// Default returns the built-in tuning.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:       time.Second / 60,
			BoundaryRadius: 50,
			WrapEpsilon:    0.01,
		},
		Asteroids: AsteroidsConfig{
			SpawnInterval:      2500 * time.Millisecond,
			DrawRadius:         100,
			SpawnMargin:        1.5,
			TargetRadiusFactor: 0.75,
			Speed:              5,
			Acceleration:       0,
			HealthMin:          5,
			HealthMax:          20,
			ColliderRadius:     2.5,
		},
		Spaceship: SpaceshipConfig{
			StartPosition:   [3]float64{0, 0, -20},
			Health:          150,
			CollisionDamage: 20,
			MaxSpeed:        30,
			Acceleration:    1,
			RotationSpeed:   2.5,
			RollSpeed:       0.1,
			Drag:            0.5,
			HalfExtents:     [3]float64{4, 1, 5},
		},
		Weapon: WeaponConfig{
			FireRate:      5,
			MissileSpeed:  50,
			ForwardOffset: 7.5,
			MissileHealth: 2.5,
			MissileDamage: 5,
			MissileRadius: 0.5,
		},
		Ring: RingConfig{
			Satellites: 15,
		},
		Assets: map[string]string{
			"asteroid":  "Asteroid.glb#Scene0",
			"spaceship": "Spaceship.glb#Scene0",
			"missile":   "Missiles.glb#Scene0",
			"satellite": "Satellite.glb#Scene0",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
