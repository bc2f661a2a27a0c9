package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bondeluke/primes/pkg/primes/sequence"
	"github.com/bondeluke/primes/pkg/primes/wheel"
)

const (
	// The 50 millionth prime is 982,451,653.
	defaultCount      = 50_000_000
	maxParallelism    = 128
	primesPerWorker   = 100_000
	defaultFormat     = "text"
	defaultLogLevel   = "warn"
	environmentPrefix = "PRIMES"
)

type Config struct {
	Count       uint64 `mapstructure:"count" yaml:"count"`
	Parallelism int    `mapstructure:"parallelism" yaml:"parallelism"`
	BasisSize   int    `mapstructure:"basis_size" yaml:"basis_size"`
	Format      string `mapstructure:"format" yaml:"format"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	Verbose     bool   `mapstructure:"verbose" yaml:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("count", defaultCount)
	v.SetDefault("parallelism", 0) // 0 = derived from count
	v.SetDefault("basis_size", sequence.DefaultBasisSize)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("verbose", false)
}

// loadConfig merges defaults, the optional config file, PRIMES_* environment variables,
// bound flags and the positional [count] [parallelism] arguments, in increasing priority.
func loadConfig(v *viper.Viper, path string, args []string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(environmentPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	if len(args) > 0 {
		count, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid prime count %q", args[0])
		}
		v.Set("count", count)
	}
	if len(args) > 1 {
		parallelism, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid parallelism %q", args[1])
		}
		v.Set("parallelism", parallelism)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Parallelism == 0 {
		cfg.Parallelism = defaultParallelism(cfg.Count)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := validateConfig(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// defaultParallelism sieves one segment per worker for small counts and grows to
// maxParallelism segments per batch for large ones.
func defaultParallelism(count uint64) int {
	return int(min(max(count/primesPerWorker, 1), maxParallelism))
}

func validateConfig(cfg *Config) error {
	if cfg.Count < 1 {
		return errors.New("count must be at least 1")
	}
	if cfg.Parallelism < 1 {
		return errors.Errorf("parallelism must be positive, got %d", cfg.Parallelism)
	}
	if cfg.BasisSize < sequence.MinBasisSize || cfg.BasisSize > wheel.MaxBasisSize {
		return errors.Errorf("basis_size must be in [%d, %d], got %d",
			sequence.MinBasisSize, wheel.MaxBasisSize, cfg.BasisSize)
	}
	switch cfg.Format {
	case "text", "yaml", "json":
	default:
		return errors.Errorf("unknown format %q", cfg.Format)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
