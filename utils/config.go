package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ConfigEnv names an alternative config file path.
const ConfigEnv = "GOLIFE_CONFIG"

// DefaultConfigFile is read from the working directory when ConfigEnv is unset.
const DefaultConfigFile = "config.json"

// Duration is a time.Duration that unmarshals from "150ms" style strings as
// well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "[Duration.UnmarshalJSON] failed to unmarshal")
	}

	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] failed to parse %q", v)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[Duration.UnmarshalJSON] unsupported value %s", data)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the configuration for the game
type Config struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	FrameRate      Duration `json:"frame_rate"`
	Seed           int64    `json:"seed"`
	RandomDensity  float64  `json:"random_density"`
	Pattern        string   `json:"pattern"`
	Strategy       string   `json:"strategy"`
	Workers        int      `json:"workers"`
	UseMemoryPool  bool     `json:"use_memory_pool"`
	MaxGenerations int      `json:"max_generations"`
	ClearScreen    bool     `json:"clear_screen"`
	HistorySize    int      `json:"history_size"`
}

// PatternRandom seeds the grid from the random source.
const PatternRandom = "random"

// DefaultConfig returns the reference behavior: a uniformly random grid
// advanced every 100ms forever.
func DefaultConfig() Config {
	return Config{
		Width:          40,
		Height:         20,
		FrameRate:      Duration(100 * time.Millisecond),
		RandomDensity:  0.5,
		Pattern:        PatternRandom,
		Strategy:       "sequential",
		UseMemoryPool:  true,
		MaxGenerations: 0, // run forever
		HistorySize:    5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ConfigPath returns the config file location, honoring ConfigEnv.
func ConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigFile
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] grid must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] negative frame_rate %v", time.Duration(c.FrameRate))
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] random_density %v outside [0,1]", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidArgument, "[Validate] negative max_generations %d", c.MaxGenerations)
	}
	return nil
}
