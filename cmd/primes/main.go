package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bondeluke/primes/pkg/primes/sequence"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "primes [count] [parallelism]",
		Short: "Print the count-th prime",
		Long: `Computes primes with a wheel-factorized segmented sieve, sieving a batch of
segments in parallel whenever the buffer runs out, and prints the count-th prime
together with the time it took.`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configPath, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd, cfg, setupLogger(cfg))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file path (yaml)")
	flags.Int("basis", sequence.DefaultBasisSize, "Number of wheel basis primes")
	flags.String("format", defaultFormat, "Output format: text, yaml, json")
	flags.String("log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	flags.Bool("verbose", false, "Verbose output (debug logging)")

	_ = v.BindPFlag("basis_size", flags.Lookup("basis"))
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	return cmd
}

func setupLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	if cfg.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}

func run(ctx context.Context, cmd *cobra.Command, cfg *Config, logger *logrus.Logger) error {
	logger.WithFields(logrus.Fields{
		"count":       cfg.Count,
		"parallelism": cfg.Parallelism,
		"basis_size":  cfg.BasisSize,
	}).Info("computing prime")

	s, err := sequence.New(cfg.Parallelism,
		sequence.WithBasisSize(cfg.BasisSize),
		sequence.WithLogger(logger))
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := s.Nth(ctx, cfg.Count)
	if err != nil {
		return errors.Wrapf(err, "computing prime %d", cfg.Count)
	}
	elapsed := time.Since(start)

	return writeReport(cmd.OutOrStdout(), cfg.Format, Report{
		Count:       cfg.Count,
		Prime:       p,
		Parallelism: cfg.Parallelism,
		BasisSize:   cfg.BasisSize,
		Duration:    elapsed,
	})
}
