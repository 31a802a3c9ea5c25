// Command mazepath loads a maze file and runs the grid path searches on it.
//
// Usage:
//
//	mazepath solve maze.yaml --algo all --max-paths 500
//	mazepath solve maze.txt --algo hazard --budget 2
//	mazepath analyze maze.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds state shared by every subcommand.
type app struct {
	verbose bool
	// logger is built in PersistentPreRunE unless already set.
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mazepath",
		Short: "Grid maze pathfinding: BFS, DFS, Dijkstra and hazard-budgeted search",
		Long: `mazepath reads a maze in numeric form (header "rows cols" then integer
cell codes) or as a YAML document with a glyph layout, and finds paths from
Start to End.

Terrain costs: open 1, slow 3, hazard 1000. Walls are impassable.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newAnalyzeCmd(a))
	return root
}

// execute runs root and flushes the logger afterwards. cobra skips
// PersistentPostRun when RunE fails, so the flush lives here.
func execute(a *app, root *cobra.Command) error {
	defer func() {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
	}()
	return root.Execute()
}

func main() {
	a := &app{}
	if err := execute(a, newRootCmd(a)); err != nil {
		os.Exit(1)
	}
}
