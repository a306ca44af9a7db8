// Package config handles client configuration loading and management.
package config

import "time"

// Config holds all client settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Game     GameConfig     `yaml:"game"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds data file paths.
type DataConfig struct {
	AssetsPath    string `yaml:"assets_path"`    // YAML file or directory of model, material and car tables
	TrackPath     string `yaml:"track_path"`     // TRK file loaded at startup
	ScreenshotDir string `yaml:"screenshot_dir"` // Where F12 captures are written
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GameConfig holds driving settings.
type GameConfig struct {
	Car          int           `yaml:"car"`           // Index into the car list
	TickInterval time.Duration `yaml:"tick_interval"` // Frame and simulation step period
	ShowFPS      bool          `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		Game: GameConfig{
			Car:          4,
			TickInterval: 15 * time.Millisecond,
		},
		Data: DataConfig{
			AssetsPath:    "assets",
			TrackPath:     "tracks/default.trk",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
