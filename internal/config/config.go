// Package config loads the command line tool settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/yyyoichi/stegosaurus/frame"
)

const envPrefix = "STEGOSAURUS"

const (
	FramingMarkers = "markers"
	FramingLength  = "length"
	ECCNone        = "none"
	ECCGolay       = "golay"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Framing selects how the payload is delimited in the LSB stream.
	Framing string `mapstructure:"framing" validate:"required,oneof=markers length"`
	// ECC applies to length framing only.
	ECC     string        `mapstructure:"ecc" validate:"required,oneof=none golay"`
	Seed    int64         `mapstructure:"seed"`
	Verbose bool          `mapstructure:"verbose"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("framing", FramingMarkers)
	v.SetDefault("ecc", ECCNone)
	v.SetDefault("seed", frame.DefaultShuffleSeed)
	v.SetDefault("verbose", false)
	v.SetDefault("logging.level", "WARN")
	v.SetDefault("logging.format", "text")
}

// Load reads the configuration.
//
// Precedence (highest to lowest):
//  1. Flags bound on v
//  2. Environment variables (STEGOSAURUS_*)
//  3. Configuration file at configPath, when given
//  4. Default values
func Load(v *viper.Viper, configPath string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values and their combinations.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Framing == FramingMarkers && cfg.ECC != ECCNone {
		return fmt.Errorf("%w: ecc %q requires %q framing", ErrInvalidConfig, cfg.ECC, FramingLength)
	}
	return nil
}

// Framer builds the framer selected by the configuration.
func (c *Config) Framer() frame.Framer {
	if c.Framing == FramingLength {
		if c.ECC == ECCGolay {
			return frame.NewLengthPrefix(frame.WithGolay(c.Seed))
		}
		return frame.NewLengthPrefix(frame.WithoutECC())
	}
	return frame.Markers{}
}
