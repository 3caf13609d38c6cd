package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
)

const envPrefix = "COST_ATLAS"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Log        LogConfig        `mapstructure:"log"`
	Estimation EstimationConfig `mapstructure:"estimation"`
	Profiles   ProfilesConfig   `mapstructure:"profiles"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type EstimationConfig struct {
	Currency       string  `mapstructure:"currency"`
	HorizonDays    int     `mapstructure:"horizon_days"`
	MaxConcurrency int     `mapstructure:"max_concurrency"`
	VolatilityCV   float64 `mapstructure:"volatility_cv"`
	BulkQuantity   float64 `mapstructure:"bulk_quantity"`
}

type ProfilesConfig struct {
	Path string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "cost-atlas.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("estimation.currency", "USD")
	v.SetDefault("estimation.horizon_days", 30)
	v.SetDefault("estimation.max_concurrency", 0)
	v.SetDefault("estimation.volatility_cv", 0.3)
	v.SetDefault("estimation.bulk_quantity", 100)
	v.SetDefault("profiles.path", "")
}

// Load reads the optional config file at path and applies COST_ATLAS_* environment
// overrides on top of it. An empty path uses defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadDotEnv loads environment files, skipping the ones that do not exist.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// EstimatorSettings overlays the configured values on the estimator defaults.
func (e EstimationConfig) EstimatorSettings() estimation.Settings {
	settings := estimation.DefaultSettings()
	if e.Currency != "" {
		settings.DefaultCurrency = e.Currency
	}
	if e.MaxConcurrency > 0 {
		settings.MaxConcurrency = e.MaxConcurrency
	}
	if e.VolatilityCV > 0 {
		settings.VolatilityCV = e.VolatilityCV
	}
	if e.BulkQuantity > 0 {
		settings.BulkQuantity = e.BulkQuantity
	}
	return settings
}

// ZerologLevel parses the configured log level, falling back to info.
func (l LogConfig) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
