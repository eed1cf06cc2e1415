package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cubelife/internal/app"
	"cubelife/internal/core"
	"cubelife/internal/tui"
)

func newPickCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pick X Y",
		Short: "print the grid cell under a window pixel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sx, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("pixel x: %w", err)
			}
			sy, err := strconv.ParseFloat(args[1], 32)
			if err != nil {
				return fmt.Errorf("pixel y: %w", err)
			}
			scene, err := app.NewScene(c.cfg)
			if err != nil {
				return err
			}
			x, y, ok := scene.Pick(float32(sx), float32(sy))
			if !ok {
				printf(cmd, "miss\n")
				return nil
			}
			printf(cmd, "cell %d %d\n", x, y)
			return nil
		},
	}
}

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [pattern]",
		Short: "interactive terminal view with mouse painting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.cfg.Grid.Pattern = args[0]
			}
			scene, stats, err := c.newScene()
			if err != nil {
				return err
			}
			defer closeQuietly(c.logger, stats)
			return tui.Run(scene, c.cfg.Window.TPS)
		},
	}
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "list the built-in seed patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
			for _, p := range core.Patterns() {
				b := p.Bounds()
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, b.W, b.H, len(p.Cells), p.Description)
			}
			return w.Flush()
		},
	}
}

func newConfigCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				return c.cfg.WriteYAML(out)
			}
			data, err := c.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
