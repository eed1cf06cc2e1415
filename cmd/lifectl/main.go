// Command lifectl runs the automaton headless, in a terminal UI, or answers
// one-off questions about a configuration.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cubelife/internal/app"
	"cubelife/internal/config"
	"cubelife/internal/logging"
	"cubelife/internal/telemetry"
)

type cli struct {
	cfg        *config.Config
	configPath string
	logOpts    logging.Options
	logger     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "lifectl",
		Short:         "Conway's Game of Life on a torus",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	goFlags := flag.NewFlagSet("lifectl", flag.ContinueOnError)
	c.cfg.Bind(goFlags)
	c.logOpts.Bind(goFlags)
	root.PersistentFlags().AddGoFlagSet(goFlags)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file path (yaml)")

	root.AddCommand(
		newRunCmd(c),
		newPickCmd(c),
		newTUICmd(c),
		newPatternsCmd(),
		newConfigCmd(c),
	)
	return root
}

// setup installs the logger and, when --config is given, reloads the
// configuration from the file with explicit flags layered on top.
func (c *cli) setup(cmd *cobra.Command) error {
	logger, err := logging.Install(cmd.ErrOrStderr(), c.logOpts)
	if err != nil {
		return err
	}
	c.logger = logger
	if c.configPath == "" {
		return c.cfg.Validate()
	}
	overrides := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) { overrides[f.Name] = f.Value.String() })
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Apply(overrides); err != nil {
		return err
	}
	c.cfg = cfg
	logger.Debug("config loaded", "path", c.configPath)
	return nil
}

// newScene builds a scene and attaches the configured CSV stats output.
// The returned closer flushes the stats file.
func (c *cli) newScene(extra ...telemetry.Recorder) (*app.Scene, io.Closer, error) {
	scene, err := app.NewScene(c.cfg)
	if err != nil {
		return nil, nil, err
	}
	scene.SetLogger(c.logger)
	stats, err := telemetry.CreateCSV(c.cfg.Telemetry.StatsPath)
	if err != nil {
		return nil, nil, err
	}
	recorders := append([]telemetry.Recorder{}, extra...)
	if stats != nil {
		recorders = append(recorders, stats)
	}
	if len(recorders) > 0 {
		scene.SetRecorder(telemetry.Tee(recorders...))
	}
	return scene, stats, nil
}

func closeQuietly(logger *slog.Logger, cl io.Closer) {
	if cl == nil {
		return
	}
	if err := cl.Close(); err != nil {
		logger.Warn("close failed", "error", err)
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
