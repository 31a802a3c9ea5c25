package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for construction and queries.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("pathfinder: grid is nil")

	// ErrMissingEndpoint indicates the grid lacks a Start or an End cell.
	ErrMissingEndpoint = errors.New("pathfinder: grid must contain a start and an end cell")

	// ErrDuplicateEndpoint indicates more than one Start or End cell.
	ErrDuplicateEndpoint = errors.New("pathfinder: grid contains more than one start or end cell")

	// ErrNoPath indicates a search exhausted its frontier without reaching End.
	// It is an expected outcome for disconnected or over-constrained grids.
	ErrNoPath = errors.New("pathfinder: no path found from start to end")

	// ErrBadBudget is returned for a negative hazard budget.
	ErrBadBudget = errors.New("pathfinder: hazard budget must be non-negative")

	// ErrOptionViolation is returned when an invalid QueryOption is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")

	// ErrInvalidPath is returned by Validate and the cost helpers for
	// sequences that are not a legal Start→End walk.
	ErrInvalidPath = errors.New("pathfinder: invalid path")
)

// Move costs by destination terrain. Wall has no cost: it is never entered.
const (
	CostOpen   = 1
	CostSlow   = 3
	CostHazard = 1000
)

// StepCost returns the cost of moving into a cell of terrain t.
// ok is false for Wall (and any unknown terrain).
func StepCost(t maze.Terrain) (cost int, ok bool) {
	switch t {
	case maze.Open, maze.Start, maze.End:
		return CostOpen, true
	case maze.Slow:
		return CostSlow, true
	case maze.Hazard:
		return CostHazard, true
	default:
		return 0, false
	}
}

// Path is an ordered sequence of coordinates from Start to End, inclusive.
type Path []maze.Coord

// Len returns the number of moves (edges) in p.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Equal reports whether p and q visit the same cells in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String renders p as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

// Algorithm names a query strategy.
type Algorithm string

const (
	AlgoBFS      Algorithm = "bfs"
	AlgoDFS      Algorithm = "dfs"
	AlgoDijkstra Algorithm = "dijkstra"
	AlgoHazard   Algorithm = "hazard"
)

// Algorithms lists every strategy in reporting order.
var Algorithms = []Algorithm{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoHazard}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrOptionViolation, s)
}

// Option configures a Pathfinder at construction time.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	lastWins bool
}

func defaultConfig() config {
	return config{logger: zap.NewNop()}
}

// WithLogger attaches a structured logger. Queries log at Debug level.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLastEndpointWins accepts grids with several Start or End cells and
// keeps the last one found in row-major order instead of failing with
// ErrDuplicateEndpoint.
func WithLastEndpointWins() Option {
	return func(c *config) {
		c.lastWins = true
	}
}

// QueryOption configures a single query via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when the query runs.
type QueryOption func(*QueryOptions)

// QueryOptions holds per-query parameters.
type QueryOptions struct {
	// Ctx allows the exhaustive enumeration to be cancelled.
	Ctx context.Context

	// MaxPaths, if > 0, stops AllPathsDFS after that many paths.
	// 0 means no cap.
	MaxPaths int

	// Budget is the number of Hazard cells the hazard strategy may cross
	// at zero cost. Defaults to 1.
	Budget int

	// internal error recorded during option parsing
	err error
}

// DefaultQueryOptions returns background context, no path cap and a
// hazard budget of one.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Ctx:      context.Background(),
		MaxPaths: 0,
		Budget:   1,
	}
}

// WithContext sets a context checked periodically by AllPathsDFS.
func WithContext(ctx context.Context) QueryOption {
	return func(o *QueryOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPaths caps the number of paths enumerated.
//
//	n > 0: stop after n paths
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) QueryOption {
	return func(o *QueryOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// WithBudget sets the hazard budget used by the hazard strategy.
// Negative values are reported as ErrBadBudget.
func WithBudget(k int) QueryOption {
	return func(o *QueryOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadBudget, k)
			return
		}
		o.Budget = k
	}
}

func buildQueryOptions(opts []QueryOption) (QueryOptions, error) {
	o := DefaultQueryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
