package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/on-the-ground/popprob_go/estimator"
)

// Config is the configuration found under the "config" key.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Estimator EstimatorConfig `koanf:"estimator"`
	Cache     CacheConfig     `koanf:"cache"`
}

// LogConfig selects the zap logger built by log.NewLogger.
type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// EstimatorConfig holds the search parameters of the estimator.
type EstimatorConfig struct {
	Tolerance     float64 `koanf:"tolerance"`
	MaxPopulation uint32  `koanf:"max_population"`
}

// CacheConfig selects the memo tables backing the estimator caches.
type CacheConfig struct {
	Kind       string `koanf:"kind"`        // unbounded, generation or ristretto
	MaxEntries uint32 `koanf:"max_entries"` // per generation
	MaxCost    int64  `koanf:"max_cost"`    // bytes, per ristretto table
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		ConfigLogLevel:               "info",
		ConfigLogDevelopment:         false,
		ConfigEstimatorTolerance:     estimator.DefaultTolerance,
		ConfigEstimatorMaxPopulation: uint32(math.MaxUint32),
		ConfigCacheKind:              CacheUnbounded,
		ConfigCacheMaxEntries:        0,
		ConfigCacheMaxCost:           int64(64 << 20),
	}
}

// Load layers the defaults, the YAML file at path (skipped when empty) and
// POPPROB_* environment variables, in that order.
func Load(path string) (Config, error) {
	k := koanf.New(delimiter)

	if err := k.Load(confmap.Provider(defaults(), delimiter), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, delimiter, envToKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal(ConfigPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envToKey(s string) string {
	section := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return ConfigPrefix + delimiter + strings.Replace(section, "_", delimiter, 1)
}

func (c Config) validate() error {
	if c.Estimator.Tolerance <= 0 || c.Estimator.Tolerance >= 1 {
		return fmt.Errorf("%s must be in (0, 1), got %v", ConfigEstimatorTolerance, c.Estimator.Tolerance)
	}
	switch c.Cache.Kind {
	case CacheUnbounded:
	case CacheGeneration:
		if c.Cache.MaxEntries == 0 {
			return fmt.Errorf("%s must be positive for %s caches", ConfigCacheMaxEntries, CacheGeneration)
		}
	case CacheRistretto:
		if c.Cache.MaxCost <= 0 {
			return fmt.Errorf("%s must be positive for %s caches", ConfigCacheMaxCost, CacheRistretto)
		}
	default:
		return fmt.Errorf("unknown %s %q", ConfigCacheKind, c.Cache.Kind)
	}
	return nil
}
