package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asteroids.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 50.0, cfg.Simulation.BoundaryRadius)
	require.Equal(t, 2500*time.Millisecond, cfg.Asteroids.SpawnInterval)
	require.Equal(t, 150.0, cfg.Spaceship.Health)
	require.Equal(t, 15, cfg.Ring.Satellites)
	require.Empty(t, cfg.Input.Keymap)
	require.Empty(t, cfg.Scripting.Dir)
}

func TestLoad(t *testing.T) {
	t.Run("Shipped file", func(t *testing.T) {
		cfg, err := Load("../../config/asteroids.toml")
		require.NoError(t, err)
		require.Equal(t, 16*time.Millisecond, cfg.Simulation.TickRate)
		require.Equal(t, "config/keymap.yaml", cfg.Input.Keymap)
		require.Equal(t, "Asteroid.glb#Scene0", cfg.Assets["asteroid"])
	})

	t.Run("Partial file keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
[asteroids]
spawn_interval = "1s"

[weapon]
missile_lifetime = "3s"
`))
		require.NoError(t, err)
		require.Equal(t, time.Second, cfg.Asteroids.SpawnInterval)
		require.Equal(t, 3*time.Second, cfg.Weapon.MissileLifetime)
		require.Equal(t, 5.0, cfg.Weapon.FireRate)
	})

	t.Run("Bad duration", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[simulation]\ntick_rate = \"fast\"\n"))
		require.Error(t, err)
	})

	t.Run("Invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[asteroids]\nhealth_min = 30.0\n"))
		require.ErrorContains(t, err, "health_min")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)

		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "none.toml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"simulation.tick_rate":       func(c *Config) { c.Simulation.TickRate = 0 },
		"simulation.boundary_radius": func(c *Config) { c.Simulation.BoundaryRadius = -1 },
		"asteroids.spawn_interval":   func(c *Config) { c.Asteroids.SpawnInterval = 0 },
		"asteroids.draw_radius":      func(c *Config) { c.Asteroids.DrawRadius = 60 },
		"weapon.fire_rate":           func(c *Config) { c.Weapon.FireRate = 0 },
		"ring.satellites":            func(c *Config) { c.Ring.Satellites = -1 },
	}
	for want, mutate := range cases {
		t.Run(want, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), want)
		})
	}
}
