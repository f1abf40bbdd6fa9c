// Package config resolves runtime settings from .env files, CATALOG_*
// environment variables, an optional config file and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"librarycatalog/internal/validation"
)

const envPrefix = "CATALOG"

// ErrInvalid is returned when the resolved configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Prompt   string `mapstructure:"prompt" json:"prompt"`
	Format   string `mapstructure:"format" json:"format" validate:"oneof=text json"`
	Seed     string `mapstructure:"seed" json:"seed"`
	PageSize int    `mapstructure:"page_size" json:"page_size" validate:"min=1,max=100"`
	Verbose  bool   `mapstructure:"verbose" json:"verbose"`
}

func Defaults() Config {
	return Config{
		Prompt:   "catalog> ",
		Format:   "text",
		PageSize: 20,
	}
}

// LoadEnvFiles loads .env and .env.local when present.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// NewViper returns a viper instance with defaults and CATALOG_* env binding.
// Callers bind flags onto it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("prompt", d.Prompt)
	v.SetDefault("format", d.Format)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("verbose", d.Verbose)
	return v
}

// Load reads the optional config file and decodes the merged settings.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if errs := validation.ValidateStruct(cfg); errs != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalid, validation.Join(errs))
	}
	return cfg, nil
}
