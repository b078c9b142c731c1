// Command aoc2023 solves the Advent of Code 2023 puzzles, days 1 to 7.
//
// Each solution checks itself against the sample in its doc comment
// before it reads <input-dir>/2023/<day>.input.
package main

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sledgeworks/aoc"
)

//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

type flags struct {
	day        int
	part       string
	sample     bool
	skipSample bool
	debug      bool
	inputDir   string
	envFile    string
}

func newRootCmd() *cobra.Command {
	var (
		f      flags
		cfg    aoc.Config
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:           "aoc2023",
		Short:         "Solve Advent of Code 2023, days 1-7",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = aoc.LoadConfig(f.envFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("input-dir") {
				cfg.InputDir = f.inputDir
			}
			if f.debug {
				cfg.LogLevel = "debug"
			}
			if f.sample && f.skipSample {
				return errors.New("--sample and --skip-sample are mutually exclusive")
			}
			logger, err = aoc.NewLogger(cfg.LogLevel)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logger.Sync() //nolint:errcheck
			logger.Debug("starting", zap.Int("year", cfg.Year), zap.String("input_dir", cfg.InputDir), zap.Int("day", f.day))
			return aoc.Run(cfg.Year, sources, &solver{}, aoc.Options{
				Day:        f.day,
				Part:       f.part,
				OnlySample: f.sample,
				SkipSample: f.skipSample,
				InputDir:   cfg.InputDir,
				Out:        cmd.OutOrStdout(),
				Logger:     logger,
			})
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.day, "day", "d", 0, "day to run; 0 runs all days")
	fl.StringVarP(&f.part, "part", "p", "", "part to run; empty runs all parts")
	fl.BoolVar(&f.sample, "sample", false, "only run the samples")
	fl.BoolVar(&f.skipSample, "skip-sample", false, "skip the samples")
	fl.BoolVar(&f.debug, "debug", false, "log at debug level")
	fl.StringVar(&f.inputDir, "input-dir", "", "directory holding <year>/<day>.input (default $AOC_INPUT_DIR or .)")
	fl.StringVar(&f.envFile, "env-file", ".env", "dotenv file to load before reading AOC_* variables")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aoc2023:", err)
		os.Exit(1)
	}
}
