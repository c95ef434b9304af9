package sinewalk

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// LogConfig selects the log level and encoding ("console" or "json").
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Config is the full program configuration.
type Config struct {
	Window        WindowConfig `yaml:"window"`
	Params        Params       `yaml:"params"`
	Image         string       `yaml:"image"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	ShowFPS       bool         `yaml:"show_fps"`
	Debug         bool         `yaml:"debug"`
	Script        string       `yaml:"script"`
	// ExitAfterScript closes the window once the script has run.
	ExitAfterScript bool      `yaml:"exit_after_script"`
	Log             LogConfig `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Sine Walk",
			Width:  1024,
			Height: 768,
		},
		Params:        DefaultParams(),
		Image:         "assets/pencil.png",
		ScreenshotDir: "screenshots",
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads an optional .env file and applies SINEWALK_* overrides.
// Returns whether a .env file was found.
func (c *Config) ApplyEnv() (bool, error) {
	loaded := godotenv.Load() == nil

	if v := os.Getenv("SINEWALK_IMAGE"); v != "" {
		c.Image = v
	}
	if v := os.Getenv("SINEWALK_SCREENSHOT_DIR"); v != "" {
		c.ScreenshotDir = v
	}
	if v := os.Getenv("SINEWALK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("SINEWALK_SCRIPT"); v != "" {
		c.Script = v
	}
	for _, o := range []struct {
		name string
		dst  *int
	}{
		{"SINEWALK_WIDTH", &c.Window.Width},
		{"SINEWALK_HEIGHT", &c.Window.Height},
	} {
		if v := os.Getenv(o.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return loaded, fmt.Errorf("%s: %w", o.name, err)
			}
			*o.dst = n
		}
	}
	for _, o := range []struct {
		name string
		dst  *bool
	}{
		{"SINEWALK_DEBUG", &c.Debug},
		{"SINEWALK_SHOW_FPS", &c.ShowFPS},
		{"SINEWALK_FULLSCREEN", &c.Window.Fullscreen},
	} {
		if v := os.Getenv(o.name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return loaded, fmt.Errorf("%s: %w", o.name, err)
			}
			*o.dst = b
		}
	}
	return loaded, nil
}

// Validate checks window size and parameter ranges.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	checks := []struct {
		name      string
		v, lo, hi float64
	}{
		{"speed", c.Params.Speed, SpeedMin, SpeedMax},
		{"amplitude", c.Params.Amplitude, AmplitudeMin, AmplitudeMax},
		{"cycles", c.Params.Cycles, CyclesMin, CyclesMax},
	}
	for _, ck := range checks {
		if ck.v < ck.lo || ck.v > ck.hi {
			return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, ck.name, ck.v, ck.lo, ck.hi)
		}
	}
	switch c.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}
	return nil
}
