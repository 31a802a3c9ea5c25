package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
	"github.com/katalvlaran/lvmaze/pathfinder"
)

// algoAll runs every strategy through pathfinder.Solve.
const algoAll = "all"

type solveOptions struct {
	algo     string
	budget   int
	maxPaths int
	timeout  time.Duration
	noColor  bool
}

func newSolveCmd(a *app) *cobra.Command {
	var o solveOptions
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find a path from Start to End and draw it over the grid",
		Long: `Runs one search strategy, or all of them, and prints the grid with the
path overlaid plus its move count and cost.

Algorithms:
  bfs       fewest moves, terrain cost ignored
  dfs       every simple path; the cheapest one is drawn
  dijkstra  minimum total cost
  hazard    minimum cost with --budget hazard cells crossed free
  all       every strategy above (dfs only when --max-paths > 0)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), a, cmd.OutOrStdout(), args[0], o)
		},
	}
	cmd.Flags().StringVarP(&o.algo, "algo", "a", algoAll, "Algorithm: bfs, dfs, dijkstra, hazard or all")
	cmd.Flags().IntVar(&o.budget, "budget", 1, "Hazard cells the hazard strategy may cross free")
	cmd.Flags().IntVar(&o.maxPaths, "max-paths", 1000, "Stop DFS after this many paths (0 = no cap)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "Abort after this long (0 = no limit)")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable terminal styling")
	return cmd
}

func runSolve(ctx context.Context, a *app, out io.Writer, path string, o solveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	doc, g, err := mazefile.LoadDocument(path)
	if err != nil {
		return err
	}
	pf, err := pathfinder.New(g, pathfinder.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("maze loaded",
		zap.String("file", path),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()))

	qopts := []pathfinder.QueryOption{
		pathfinder.WithBudget(o.budget),
		pathfinder.WithMaxPaths(o.maxPaths),
	}

	var outcomes []pathfinder.Outcome
	minHazards := 0
	if strings.EqualFold(o.algo, algoAll) {
		rep, err := pf.Solve(ctx, qopts...)
		if err != nil {
			return err
		}
		outcomes, minHazards = rep.Outcomes, rep.MinHazardCrossings
	} else {
		algo, err := pathfinder.ParseAlgorithm(o.algo)
		if err != nil {
			return err
		}
		outcomes = []pathfinder.Outcome{pf.Run(ctx, algo, qopts...)}
	}

	r := newRenderer(!o.noColor)
	fmt.Fprintf(out, "%s (%dx%d)\n", doc.Name, g.Rows(), g.Cols())
	for _, oc := range outcomes {
		if err := printOutcome(out, r, g, oc); err != nil {
			return err
		}
	}
	if len(outcomes) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "min hazard crossings: %s\n", formatCrossings(minHazards))
	}
	return nil
}

func printOutcome(out io.Writer, r *renderer, g *maze.Grid, oc pathfinder.Outcome) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, r.Title(string(oc.Algorithm)))
	if oc.Err != nil {
		if errors.Is(oc.Err, pathfinder.ErrNoPath) {
			fmt.Fprintln(out, r.Muted("no path"))
			return nil
		}
		return fmt.Errorf("%s: %w", oc.Algorithm, oc.Err)
	}
	fmt.Fprint(out, r.Grid(g, oc.Path))
	if oc.Algorithm == pathfinder.AlgoDFS {
		fmt.Fprintf(out, "paths: %d\n", oc.Paths)
	}
	fmt.Fprintf(out, "path: %s\n", oc.Path)
	fmt.Fprintf(out, "moves: %d  cost: %d\n", oc.Path.Len(), oc.Cost)
	return nil
}

func formatCrossings(n int) string {
	if n < 0 {
		return "none (End unreachable)"
	}
	return fmt.Sprint(n)
}
