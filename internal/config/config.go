// Package config loads the defaults used by the eseries command.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/eseries/series"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ESERIES_CONFIG"

// DefaultPath is tried when neither a path nor EnvVar is given.
const DefaultPath = "./eseries.toml"

// Config holds the rounding defaults.
type Config struct {
	Series    string `toml:"series"`
	Direction string `toml:"direction"`

	// Tolerance, when set, selects the series and overrides Series. Zero is
	// a valid tolerance (E192), so unset is nil.
	Tolerance *float64 `toml:"tolerance"`

	Workers int `toml:"workers"`
}

// Resolved is a validated Config.
type Resolved struct {
	// Series is the series to round to, chosen by Tolerance if it was set.
	Series    series.Series
	Direction series.Direction
	Workers   int
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load loads configuration from a TOML file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, Error.New("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to parse %s: %w", path, err))
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Find loads path if given, else the file named by EnvVar, else DefaultPath
// if it exists. Without any file it returns the defaults.
func Find(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if path = os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}

	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Series == "" {
		c.Series = series.E24.String()
	}
	if c.Direction == "" {
		c.Direction = series.Nearest.String()
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate resolves the names in c.
func (c *Config) Validate() (r Resolved, err error) {
	defer Error.WrapP(&err)

	r.Series, err = series.Parse(c.Series)
	if err != nil {
		return r, err
	}

	r.Direction, err = series.ParseDirection(c.Direction)
	if err != nil {
		return r, err
	}

	if c.Tolerance != nil {
		r.Series, err = series.ForTolerance(*c.Tolerance)
		if err != nil {
			return r, err
		}
	}

	if c.Workers < 0 {
		return r, Error.New("workers must not be negative: %d", c.Workers)
	}
	r.Workers = c.Workers

	return r, nil
}
