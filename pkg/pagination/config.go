package pagination

import (
	"errors"
	"os"
	"strconv"
)

// Config bounds page sizes for paged lists and caps the unpaged lookup
// endpoints that return every match.
type Config struct {
	DefaultPageSize  int `toml:"default_page_size"`
	MaxPageSize      int `toml:"max_page_size"`
	MaxLookupResults int `toml:"max_lookup_results"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	DefaultPageSize  string
	MaxPageSize      string
	MaxLookupResults string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	for _, f := range []struct{ dst, src *int }{
		{&c.DefaultPageSize, &overlay.DefaultPageSize},
		{&c.MaxPageSize, &overlay.MaxPageSize},
		{&c.MaxLookupResults, &overlay.MaxLookupResults},
	} {
		if *f.src != 0 {
			*f.dst = *f.src
		}
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}
	if c.MaxLookupResults <= 0 {
		c.MaxLookupResults = 50
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	envInt(env.DefaultPageSize, &c.DefaultPageSize)
	envInt(env.MaxPageSize, &c.MaxPageSize)
	envInt(env.MaxLookupResults, &c.MaxLookupResults)
}

// envInt overwrites dst when the named variable holds an integer.
func envInt(name string, dst *int) {
	if name == "" {
		return
	}
	if n, err := strconv.Atoi(os.Getenv(name)); err == nil {
		*dst = n
	}
}

func (c *Config) validate() error {
	switch {
	case c.DefaultPageSize < 1:
		return errors.New("default_page_size must be positive")
	case c.MaxPageSize < 1:
		return errors.New("max_page_size must be positive")
	case c.DefaultPageSize > c.MaxPageSize:
		return errors.New("default_page_size cannot exceed max_page_size")
	case c.MaxLookupResults < 1:
		return errors.New("max_lookup_results must be positive")
	}
	return nil
}
