// Package config loads runtime configuration from defaults, an optional
// TOML file, LSSTELLAR_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/litescript/ls-stellar/internal/population"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LSSTELLAR"

// PopulationConfig controls how the default population is sampled and built.
type PopulationConfig struct {
	Size           int     `mapstructure:"size"`
	Seed           uint64  `mapstructure:"seed"`
	MinMass        float64 `mapstructure:"min_mass"`
	MaxMass        float64 `mapstructure:"max_mass"`
	MinMetallicity float64 `mapstructure:"min_metallicity"`
	MaxMetallicity float64 `mapstructure:"max_metallicity"`
	Workers        int     `mapstructure:"workers"`
}

// Sampler returns the IMF sampler these settings describe.
func (p PopulationConfig) Sampler() population.Sampler {
	return population.Sampler{
		MinMass:        p.MinMass,
		MaxMass:        p.MaxMass,
		MinMetallicity: p.MinMetallicity,
		MaxMetallicity: p.MaxMetallicity,
		Seed:           p.Seed,
	}
}

// ClockConfig controls the simulation clock.
type ClockConfig struct {
	MaxAge float64 `mapstructure:"max_age"` // Myr
	Step   float64 `mapstructure:"step"`    // Myr per tick at speed 1
	TickMS int     `mapstructure:"tick_ms"`
}

// Config holds all runtime configuration.
type Config struct {
	LogLevel   string           `mapstructure:"log_level"`
	Catalog    string           `mapstructure:"catalog"`
	Watch      bool             `mapstructure:"watch"`
	Population PopulationConfig `mapstructure:"population"`
	Clock      ClockConfig      `mapstructure:"clock"`
}

// Init points viper at a config file and the environment. An explicit
// path must exist; otherwise ls-stellar.toml is looked up in the working
// directory and ~/.config/ls-stellar and may be absent.
func Init(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("ls-stellar")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ls-stellar"))
		}
	}
	setupEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func setupEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("catalog", "")
	viper.SetDefault("watch", false)
	viper.SetDefault("population.size", 1000)
	viper.SetDefault("population.seed", 1)
	viper.SetDefault("population.min_mass", 0.1)
	viper.SetDefault("population.max_mass", 20.0)
	viper.SetDefault("population.min_metallicity", 0.01)
	viper.SetDefault("population.max_metallicity", 0.03)
	viper.SetDefault("population.workers", 0)
	viper.SetDefault("clock.max_age", 13800.0)
	viper.SetDefault("clock.step", 10.0)
	viper.SetDefault("clock.tick_ms", 100)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	setDefaults()
	setupEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	p := c.Population
	switch {
	case p.Size <= 0 && c.Catalog == "":
		return fmt.Errorf("%w: population.size must be positive, got %d", ErrInvalidConfig, p.Size)
	case !(p.MinMass > 0) || !(p.MaxMass > p.MinMass):
		return fmt.Errorf("%w: mass range [%g, %g]", ErrInvalidConfig, p.MinMass, p.MaxMass)
	case !(p.MinMetallicity > 0) || p.MaxMetallicity < p.MinMetallicity:
		return fmt.Errorf("%w: metallicity range [%g, %g]", ErrInvalidConfig, p.MinMetallicity, p.MaxMetallicity)
	case p.Workers < 0:
		return fmt.Errorf("%w: population.workers must not be negative", ErrInvalidConfig)
	case !(c.Clock.MaxAge > 0):
		return fmt.Errorf("%w: clock.max_age must be positive", ErrInvalidConfig)
	case !(c.Clock.Step > 0):
		return fmt.Errorf("%w: clock.step must be positive", ErrInvalidConfig)
	case c.Clock.TickMS <= 0:
		return fmt.Errorf("%w: clock.tick_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
