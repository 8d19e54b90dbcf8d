package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Window defaults. The view is 8x8 world units, so a 600px window maps 75px
// to one unit.
const (
	WindowWidth  = 600
	WindowHeight = 600
	WindowTitle  = "Cannonball"
)

// Audio defaults.
const (
	DefaultVolume = 0.58
)

// Environment variables.
const (
	EnvConfigPath = "CANNONBALL_CONFIG"
	EnvMute       = "CANNONBALL_MUTE"
	EnvResponse   = "CANNONBALL_RESPONSE"
)

// DefaultPath is read when EnvConfigPath is unset and the file exists.
const DefaultPath = "cannonball.toml"

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Audio struct {
	Volume float64 `toml:"volume"`
	Mute   bool    `toml:"mute"`
}

type Physics struct {
	// Response selects the contact response: "restitution" or "impulse".
	Response string `toml:"response"`
}

type Config struct {
	Window  Window  `toml:"window"`
	Audio   Audio   `toml:"audio"`
	Physics Physics `toml:"physics"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			VSync:  true,
		},
		Audio: Audio{Volume: DefaultVolume},
		Physics: Physics{
			Response: "restitution",
		},
	}
}

// Load builds the runtime config: defaults, then an optional .env file, then
// the TOML file named by CANNONBALL_CONFIG (or ./cannonball.toml), then
// individual environment overrides.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		if _, err := os.Stat(DefaultPath); err == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvMute); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMute, err)
		}
		cfg.Audio.Mute = mute
	}
	if v := os.Getenv(EnvResponse); v != "" {
		cfg.Physics.Response = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate rejects settings the game cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %g outside [0,1]", c.Audio.Volume)
	}
	switch c.Physics.Response {
	case "restitution", "impulse":
	default:
		return fmt.Errorf("unknown physics response %q", c.Physics.Response)
	}
	return nil
}
