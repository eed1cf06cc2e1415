package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"cubelife/internal/core"
	"cubelife/internal/telemetry"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00cccc"))

type runOptions struct {
	generations int
	realtime    bool
	print       bool
	plot        bool
}

func newRunCmd(c *cli) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [pattern]",
		Short: "advance the universe headless for a number of generations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.cfg.Grid.Pattern = args[0]
			}
			return c.run(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.generations, "generations", "n", 100, "number of generations to run")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "pace frames at --tps and redraw every generation")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the final grid")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot population over time")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, opts runOptions) error {
	if opts.generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", opts.generations)
	}
	var history telemetry.History
	scene, stats, err := c.newScene(&history)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, stats)

	pattern := c.cfg.Grid.Pattern
	if pattern == "" {
		pattern = "random"
	}
	printf(cmd, "%s\n", headerStyle.Render(fmt.Sprintf("cubelife  %dx%d  seed %d  pattern %s  lifecycle %d",
		c.cfg.Grid.Width, c.cfg.Grid.Height, c.cfg.Grid.Seed, pattern, scene.Engine().Lifecycle())))

	var pacer *core.FixedStep
	if opts.realtime {
		pacer = core.NewFixedStep(c.cfg.Window.TPS)
	}
	for scene.Generation() < opts.generations {
		if pacer != nil {
			pacer.Wait()
		}
		res := scene.Update()
		if res.Stepped && opts.realtime {
			printf(cmd, "\033[2J\033[H%s\ngeneration %d  population %d\n",
				scene.Universe().String(), res.Generation, scene.Universe().Population())
		}
	}
	c.logger.Info("run finished", "generations", scene.Generation(), "population", scene.Universe().Population())

	if opts.print {
		printf(cmd, "%s", scene.Universe().String())
	}
	printf(cmd, "generation %d  population %d\n", scene.Generation(), scene.Universe().Population())
	if opts.plot && len(history.Rows) > 1 {
		graph := asciigraph.Plot(history.Populations(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("population"),
		)
		printf(cmd, "%s\n", strings.TrimRight(graph, "\n"))
	}
	return nil
}
