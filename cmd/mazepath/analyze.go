package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
	"github.com/katalvlaran/lvmaze/pathfinder"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Print grid dimensions, terrain counts and hazard requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(a, cmd.OutOrStdout(), args[0])
		},
	}
}

// analyzedTerrain is the print order for terrain counts.
var analyzedTerrain = []maze.Terrain{maze.Open, maze.Slow, maze.Hazard, maze.Wall}

func runAnalyze(a *app, out io.Writer, path string) error {
	doc, g, err := mazefile.LoadDocument(path)
	if err != nil {
		return err
	}
	pf, err := pathfinder.New(g, pathfinder.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(out, "name: %s\n", doc.Name)
	if doc.Description != "" {
		fmt.Fprintf(out, "description: %s\n", doc.Description)
	}
	fmt.Fprintf(out, "size: %dx%d\n", g.Rows(), g.Cols())
	fmt.Fprintf(out, "start: %s\n", pf.Start())
	fmt.Fprintf(out, "end: %s\n", pf.End())
	for _, t := range analyzedTerrain {
		fmt.Fprintf(out, "%s: %d\n", t, g.Count(t))
	}
	_, regions := g.Regions()
	fmt.Fprintf(out, "regions: %d\n", regions)

	n, err := pf.MinHazardCrossings()
	switch {
	case errors.Is(err, pathfinder.ErrNoPath):
		n = -1
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "min hazard crossings: %s\n", formatCrossings(n))
	return nil
}
