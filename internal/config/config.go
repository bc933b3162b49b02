package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/slots"
)

// Config is the resolved client configuration. The slot catalog and API
// endpoint are static client settings; nothing in here is server state.
type Config struct {
	APIURL         string        `mapstructure:"api_url"`
	Timezone       string        `mapstructure:"timezone"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Slots          []string      `mapstructure:"slots"`
	ConfigDir      string        `mapstructure:"-"`

	catalog  slots.Catalog
	location *time.Location
}

// Load reads config.yaml from dir (created on demand), applies
// DISPATCH_-prefixed environment overrides, and validates the result. A
// missing file is not an error; defaults apply.
func Load(dir string) (Config, error) {
	dir, err := expandDir(dir)
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Config{}, fmt.Errorf("creating config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("DISPATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api_url", "http://localhost:8080/api/v1")
	v.SetDefault("timezone", "Local")
	v.SetDefault("request_timeout", constants.DefaultRequestTimeout)
	v.SetDefault("slots", constants.DefaultSlots)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ConfigDir = dir

	cfg.catalog, err = slots.NewCatalog(cfg.Slots)
	if err != nil {
		return Config{}, fmt.Errorf("invalid slot catalog: %w", err)
	}
	cfg.location, err = slots.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = constants.DefaultRequestTimeout
	}
	return cfg, nil
}

// Catalog returns the validated slot catalog.
func (c Config) Catalog() slots.Catalog {
	return c.catalog
}

// Location returns the configured timezone location.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func expandDir(dir string) (string, error) {
	if dir == "" {
		dir = constants.DefaultConfigDir
	}
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home dir: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}
