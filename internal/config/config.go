// Package config provides YAML-based game configuration loading and
// difficulty presets for memoris.
package config

// GameConfig contains every tunable of the game outside the animation
// timings, which are fixed.
type GameConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Display  DisplayConfig  `yaml:"display"`
	Server   ServerConfig   `yaml:"server"`
}

// GameplayConfig defines the rules around a level.
type GameplayConfig struct {
	WatchingTimeMs int    `yaml:"watching_time_ms"` // how long the level is shown before it is hidden
	Lives          int    `yaml:"lives"`
	TimeBonusSec   int    `yaml:"time_bonus_sec"` // added or removed by the time cells
	SeriesRoot     string `yaml:"series_root"`
	DefaultSerie   string `yaml:"default_serie"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DisplayConfig defines terminal rendering.
type DisplayConfig struct {
	FPS      int  `yaml:"fps"`
	ShowHelp bool `yaml:"show_help"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Gameplay: GameplayConfig{
			WatchingTimeMs: 4000,
			Lives:          3,
			TimeBonusSec:   3,
			SeriesRoot:     "~/.memoris/series",
			DefaultSerie:   "tutorial",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Display: DisplayConfig{
			FPS:      30,
			ShowHelp: true,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        2323,
			HostKeyPath: ".ssh/memoris_ed25519",
		},
	}
}

// Normalize clamps out-of-range values to something playable.
func (c *GameConfig) Normalize() {
	if c.Gameplay.WatchingTimeMs < 0 {
		c.Gameplay.WatchingTimeMs = 0
	}
	if c.Gameplay.Lives < 1 {
		c.Gameplay.Lives = 1
	}
	if c.Gameplay.TimeBonusSec < 0 {
		c.Gameplay.TimeBonusSec = 0
	}
	c.Audio.Volume = clampF(c.Audio.Volume, 0, 1)
	if c.Display.FPS < 1 {
		c.Display.FPS = 1
	}
	if c.Display.FPS > 120 {
		c.Display.FPS = 120
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		c.Server.Port = DefaultGameConfig().Server.Port
	}
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
