package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Patrick74531/minigame-sub000/internal/geom"
	"github.com/Patrick74531/minigame-sub000/internal/lane"
)

// Gameplay holds the tunables for arena geometry, spawn jitter and the
// lane unlock schedule.
type Gameplay struct {
	LogLevel string `yaml:"log_level"`

	// Arena
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`

	// Portal resolution
	EdgeMargin     float64 `yaml:"edge_margin"`
	DistanceFactor float64 `yaml:"distance_factor"` // clamped to [0.3, 1.0]

	// Spawn placement
	JitterRadius float64 `yaml:"jitter_radius"`

	// Lane unlock schedule
	UnlockWave2 int `yaml:"unlock_wave_2"`
	UnlockWave3 int `yaml:"unlock_wave_3"`

	// Lane focus
	InwardFocusOffset float64 `yaml:"inward_focus_offset"`

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGameplay returns Gameplay config with sensible defaults.
func DefaultGameplay() Gameplay {
	return Gameplay{
		LogLevel:          "info",
		HalfWidth:         25,
		HalfHeight:        25,
		EdgeMargin:        4,
		DistanceFactor:    0.9,
		JitterRadius:      1.2,
		UnlockWave2:       4,
		UnlockWave3:       8,
		InwardFocusOffset: 3,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "minigame",
			Password: "minigame",
			DBName:   "minigame",
			SSLMode:  "disable",
		},
	}
}

// LoadGameplay loads gameplay config from a YAML file.
// If the file doesn't exist, returns defaults. The result is normalized:
// out-of-range values are clamped rather than rejected.
func LoadGameplay(path string) (Gameplay, error) {
	cfg := DefaultGameplay()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps values into their documented ranges.
func (c *Gameplay) normalize() {
	if c.HalfWidth < 0 {
		c.HalfWidth = 0
	}
	if c.HalfHeight < 0 {
		c.HalfHeight = 0
	}
	if c.EdgeMargin < 0 {
		c.EdgeMargin = 0
	}
	if c.DistanceFactor < 0.3 {
		c.DistanceFactor = 0.3
	}
	if c.DistanceFactor > 1.0 {
		c.DistanceFactor = 1.0
	}
	if c.JitterRadius < 0 {
		c.JitterRadius = 0
	}
	if c.InwardFocusOffset < 0 {
		c.InwardFocusOffset = 0
	}
	if c.UnlockWave2 < 1 {
		c.UnlockWave2 = 1
	}
	if c.UnlockWave3 <= c.UnlockWave2 {
		c.UnlockWave3 = c.UnlockWave2 + 1
	}
}

// Bounds returns the configured arena bounds.
func (c Gameplay) Bounds() geom.ArenaBounds {
	return geom.ArenaBounds{HalfWidth: c.HalfWidth, HalfHeight: c.HalfHeight}
}

// Settings returns the lane-geometry settings derived from the config.
func (c Gameplay) Settings() lane.Settings {
	return lane.Settings{
		EdgeMargin:        c.EdgeMargin,
		DistanceFactor:    c.DistanceFactor,
		JitterRadius:      c.JitterRadius,
		InwardFocusOffset: c.InwardFocusOffset,
		Unlock: lane.UnlockSchedule{
			Wave2: c.UnlockWave2,
			Wave3: c.UnlockWave3,
		},
	}
}
