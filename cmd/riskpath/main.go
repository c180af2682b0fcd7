// Command riskpath prints the lowest total risk of any route from the
// top-left to the bottom-right corner of a cave map.
//
// The map is built from a pattern of digit lines (a file argument, or stdin)
// tiled --tiles times along each axis, each tile one risk level higher per
// step away from the original and wrapping 9 back to 1.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/riskpath/config"
	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/gridgraph"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries flag values and the logger for one command execution.
type cli struct {
	configPath    string
	tiles         int
	algorithm     string
	progressEvery int
	verbose       bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command. A non-nil logger is used as is; otherwise
// one is built from the configuration.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	c := &cli{logger: logger}
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "riskpath [pattern-file]",
		Short: "Lowest total risk across a tiled cave map",
		Long: `riskpath reads a rectangular pattern of risk digits (1-9), tiles it into
the full cave map and prints the lowest total risk of any route from the
top-left to the bottom-right corner. Entering a cell costs its risk level;
the starting cell is free.

Reads the pattern from stdin when no file (or "-") is given.

Example:
  riskpath --tiles 5 --algorithm heap input.txt`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&c.configPath, "config", "", "YAML config file")
	f.IntVar(&c.tiles, "tiles", defaults.Tiles, "tile factor along each axis (1 = pattern as is)")
	f.StringVar(&c.algorithm, "algorithm", defaults.Algorithm, "node selection: linear or heap")
	f.IntVar(&c.progressEvery, "progress-every", defaults.ProgressEvery, "log progress every N rounds (0 disables)")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// setup loads the config file, applies explicitly set flags on top, and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("tiles") {
		cfg.Tiles = c.tiles
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = c.algorithm
	}
	if flags.Changed("progress-every") {
		cfg.ProgressEvery = c.progressEvery
	}
	if c.verbose {
		cfg.Logging.Level = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	if c.logger != nil {
		return nil
	}
	c.logger, err = newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// newLogger builds a stderr zap logger from the logging section.
func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

// run reads the pattern, expands it, searches it, and prints the result.
func (c *cli) run(cmd *cobra.Command, args []string) error {
	in, name, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	lines, err := gridgraph.ReadPattern(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	base, err := gridgraph.ParsePattern(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	full, err := base.Expand(c.cfg.Tiles)
	if err != nil {
		return err
	}
	c.logger.Debug("Grid expanded",
		zap.String("input", name),
		zap.Int("pattern_width", base.Width),
		zap.Int("pattern_height", base.Height),
		zap.Int("width", full.Width),
		zap.Int("height", full.Height),
		zap.String("cells", humanize.Comma(int64(full.Len()))))

	sel, err := c.cfg.Selection()
	if err != nil {
		return err
	}
	opts := []dijkstra.Option{dijkstra.WithSelection(sel)}
	if c.cfg.ProgressEvery > 0 {
		opts = append(opts, dijkstra.WithProgress(c.logProgress, c.cfg.ProgressEvery))
	}

	start := time.Now()
	risk, err := dijkstra.LowestRisk(full, opts...)
	if err != nil {
		return err
	}
	c.logger.Info("Search finished",
		zap.String("algorithm", sel.String()),
		zap.Int64("risk", risk),
		zap.Duration("took", time.Since(start)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), risk)
	return err
}

// logProgress reports the open-set size and the time spent since the last report.
func (c *cli) logProgress(p dijkstra.Progress) {
	c.logger.Info("Search progress",
		zap.String("open", humanize.Comma(int64(p.Open))),
		zap.Int("round", p.Round),
		zap.Float64("interval_s", p.Interval.Seconds()),
		zap.Duration("elapsed", p.Elapsed))
}

// openInput returns the pattern source: the named file, or stdin for none or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open pattern: %w", err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}
