package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// EdgeID addresses an edge in the network's edge arena.
// Forward edges are always even; the paired backward edge is id ^ 1.
type EdgeID = int

// NoEdge marks an absent predecessor edge.
const NoEdge EdgeID = -1

// Sentinel errors. Precondition violations panic with an error wrapping one of
// the first four; Validate returns errors wrapping the rest.
var (
	// ErrNodeCount indicates a network was requested with fewer than one node.
	ErrNodeCount = errors.New("flow: node count must be positive")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrNegativeCapacity indicates AddEdge was called with capacity < 0.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrNegativeEdgeHint indicates WithEdgeHint received a negative value.
	ErrNegativeEdgeHint = errors.New("flow: edge hint must be non-negative")

	// ErrSkewSymmetry indicates flow(e) != -flow(e^1) for some pair.
	ErrSkewSymmetry = errors.New("flow: skew symmetry violated")

	// ErrCapacityExceeded indicates a forward edge whose flow is outside [0, capacity].
	ErrCapacityExceeded = errors.New("flow: flow outside capacity bounds")

	// ErrConservation indicates an inner node whose inflow differs from its outflow.
	ErrConservation = errors.New("flow: flow conservation violated")
)

// EdgeError reports an invariant violation on a single residual pair.
type EdgeError struct {
	Edge     EdgeID
	From, To int
	Err      error
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("%v: edge %d (%d→%d)", e.Err, e.Edge, e.From, e.To)
}

// Unwrap exposes the sentinel for errors.Is.
func (e EdgeError) Unwrap() error { return e.Err }

// Options configures a network and the solver built on it.
//
// Logger   – receives Debug events per phase and Trace events per augmenting path.
//
//	Defaults to zerolog.Nop().
//
// EdgeHint – expected number of AddEdge calls; preallocates the edge arena.
type Options struct {
	Logger   zerolog.Logger
	EdgeHint int
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// WithLogger routes solver progress events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithEdgeHint preallocates room for m AddEdge calls (2·m residual edges).
// A negative hint panics with ErrNegativeEdgeHint.
func WithEdgeHint(m int) Option {
	return func(o *Options) {
		if m < 0 {
			panic(fmt.Errorf("%w: %d", ErrNegativeEdgeHint, m))
		}
		o.EdgeHint = m
	}
}

// DefaultOptions returns the configuration used when no Option is given:
// a disabled logger and no edge preallocation.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		EdgeHint: 0,
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Stats counts the work done by the solver over its lifetime.
//
// Phases        – successful BFS layerings (Dinic family) or shortest-path rounds (min-cost, Edmonds–Karp).
// Augmentations – augmenting paths pushed.
// Scales        – threshold halvings (ScalingDinic only).
type Stats struct {
	Phases        int
	Augmentations int
	Scales        int
}
