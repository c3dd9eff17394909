package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	maxTicksPerSecond = 1000 // Keeps the tick interval at 1ms or more
	maxBalls          = 64
)

var errInvalidConfig = errors.New("invalid config")

// Config holds demo settings
type Config struct {
	TicksPerSecond int           `yaml:"tps"`
	MaxCatchup     int           `yaml:"catchup"`
	FPS            int           `yaml:"fps"` // 0 renders as fast as possible
	Balls          int           `yaml:"balls"`
	Audio          bool          `yaml:"audio"`
	Volume         float64       `yaml:"volume"` // 0.0-1.0
	Lag            time.Duration `yaml:"lag"`    // Artificial delay added to every render
	Debug          bool          `yaml:"debug"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		TicksPerSecond: 20,
		MaxCatchup:     5,
		FPS:            60,
		Balls:          8,
		Audio:          false,
		Volume:         0.5,
	}
}

// LoadConfig layers an optional YAML file and environment variables over the defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from GAMELOOP_* variables, unparseable values are ignored
func (c *Config) applyEnv() {
	if v := os.Getenv("GAMELOOP_TPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TicksPerSecond = n
		}
	}
	if v := os.Getenv("GAMELOOP_CATCHUP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxCatchup = n
		}
	}
	if v := os.Getenv("GAMELOOP_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
	if v := os.Getenv("GAMELOOP_BALLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Balls = n
		}
	}
	if v := os.Getenv("GAMELOOP_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio = b
		}
	}

	// Volume as 0-100
	if v := os.Getenv("GAMELOOP_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := os.Getenv("GAMELOOP_LAG_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Lag = time.Duration(n) * time.Millisecond
		}
	}
}

// Validate checks every field is in range
func (c *Config) Validate() error {
	if c.TicksPerSecond < 1 || c.TicksPerSecond > maxTicksPerSecond {
		return fmt.Errorf("%w: tps %d out of range [1, %d]", errInvalidConfig, c.TicksPerSecond, maxTicksPerSecond)
	}
	if c.MaxCatchup < 1 {
		return fmt.Errorf("%w: catchup %d must be >= 1", errInvalidConfig, c.MaxCatchup)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps %d must be >= 0", errInvalidConfig, c.FPS)
	}
	if c.Balls < 0 || c.Balls > maxBalls {
		return fmt.Errorf("%w: balls %d out of range [0, %d]", errInvalidConfig, c.Balls, maxBalls)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f out of range [0, 1]", errInvalidConfig, c.Volume)
	}
	if c.Lag < 0 {
		return fmt.Errorf("%w: lag %v must be >= 0", errInvalidConfig, c.Lag)
	}
	return nil
}

// parseArgs builds the final config: defaults, then file, then env, then explicit flags
func parseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("gameloop-demo", flag.ContinueOnError)

	def := DefaultConfig()
	configPath := fs.String("config", "", "YAML config file")
	tps := fs.Int("tps", def.TicksPerSecond, "Simulation ticks per second")
	catchup := fs.Int("catchup", def.MaxCatchup, "Max ticks per frame before a render is forced")
	fps := fs.Int("fps", def.FPS, "Render frame cap, 0 for uncapped")
	balls := fs.Int("balls", def.Balls, "Number of balls")
	audio := fs.Bool("audio", def.Audio, "Play a metronome click on ticks")
	volume := fs.Float64("volume", def.Volume, "Metronome volume 0.0-1.0")
	lag := fs.Duration("lag", def.Lag, "Artificial render latency, e.g. 300ms")
	debug := fs.Bool("debug", def.Debug, "Write logs to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}

	// Only flags given on the command line override file and env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tps":
			cfg.TicksPerSecond = *tps
		case "catchup":
			cfg.MaxCatchup = *catchup
		case "fps":
			cfg.FPS = *fps
		case "balls":
			cfg.Balls = *balls
		case "audio":
			cfg.Audio = *audio
		case "volume":
			cfg.Volume = *volume
		case "lag":
			cfg.Lag = *lag
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
