// File: builder.go
// Role: dispatches one goroutine per group to walk that group's paths and
//   build its presence featureSet, then reduces the G sets into coverage
//   counts (C4).
// Concurrency: bounded worker pool via golang.org/x/sync/errgroup with
//   SetLimit; each worker owns its own group's accumulator exclusively, so
//   the walk phase needs no locking. A single owner performs the
//   cross-group reduce after errgroup.Wait() returns (the barrier).
// Determinism: Build's result does not depend on how many workers ran it
//   or in what order they finished, only on the graph and group
//   assignment — reordering which goroutine runs first cannot change a
//   featureSet's membership, since each worker's accumulator is private.

package abundance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pangrowth/core"
	"github.com/katalvlaran/pangrowth/group"
	"github.com/katalvlaran/pangrowth/pathset"
)

// unlimitedBudget effectively disables the memory-budget check.
const unlimitedBudget = int64(1) << 62

type config struct {
	workers           int
	memoryBudgetBytes int64
	requireDense      bool
}

// Option configures Build. The zero Option set runs single-threaded with
// an unbounded memory budget, always choosing the dense representation.
type Option func(*config)

// WithWorkers bounds the number of groups processed concurrently. n<=0 is
// ignored (the default of 1 is kept).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithMemoryBudgetBytes caps the estimated size of the dense bitset
// representation; Build falls back to the sparse representation when the
// estimate exceeds n, unless WithRequireDense is also given.
func WithMemoryBudgetBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.memoryBudgetBytes = n
		}
	}
}

// WithRequireDense makes Build return ErrOutOfMemory instead of silently
// switching to the sparse representation when the budget is exceeded.
func WithRequireDense() Option {
	return func(c *config) { c.requireDense = true }
}

func defaultConfig() config {
	return config{workers: 1, memoryBudgetBytes: unlimitedBudget}
}

// Build walks every path of every resolved group and returns the
// resulting presence Table. ctx is checked cooperatively at path
// boundaries and on every step, so callers can cancel a long build.
//
// A non-nil error is always fatal: core.ErrUnknownSegment,
// core.ErrMalformedStep propagated from a path walk, or ErrOutOfMemory
// when WithRequireDense was given and the budget is exceeded.
func Build(ctx context.Context, src *pathset.Source, lg *core.LinkGraph, resolver *group.Resolver, opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	numGroups := resolver.NumGroups()
	numNodes := lg.Segments.Len()
	numEdges := lg.Edges.Len()

	pathsByGroup := make([][]int32, numGroups)
	for pid := int32(0); pid < src.NumPaths(); pid++ {
		gid, ok := resolver.GroupOf(src.Name(pid))
		if !ok {
			continue
		}
		pathsByGroup[gid] = append(pathsByGroup[gid], pid)
	}

	repr := Dense
	denseWords := int64((numNodes+63)/64) + int64((numEdges+63)/64)
	denseBytes := int64(numGroups) * denseWords * 8
	if denseBytes > cfg.memoryBudgetBytes {
		if cfg.requireDense {
			return nil, ErrOutOfMemory
		}
		repr = Sparse
	}

	t := &Table{
		NumGroups:  numGroups,
		NumNodes:   numNodes,
		NumEdges:   numEdges,
		GroupNames: resolver.GroupNames(),
		NodeBP:     make([]int32, numNodes),
		nodeSets:   make([]featureSet, numGroups),
		edgeSets:   make([]featureSet, numGroups),
	}
	for i := int32(0); i < numNodes; i++ {
		t.NodeBP[i] = lg.Segments.Length(i)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)

	for gid := int32(0); gid < numGroups; gid++ {
		gid := gid
		eg.Go(func() error {
			var nodeLocal, edgeLocal localAccumulator
			if repr == Dense {
				nodeLocal = newDenseAccumulator(numNodes)
				edgeLocal = newDenseAccumulator(numEdges)
			} else {
				nodeLocal = newSparseAccumulator()
				edgeLocal = newSparseAccumulator()
			}
			for _, pid := range pathsByGroup[gid] {
				if err := egCtx.Err(); err != nil {
					return err
				}
				err := src.Walk(pid, func(step core.Step, edge int32, hasEdge bool) error {
					if err := egCtx.Err(); err != nil {
						return err
					}
					nodeLocal.add(step.Seg)
					if hasEdge {
						edgeLocal.add(edge)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			t.nodeSets[gid] = nodeLocal.finish()
			t.edgeSets[gid] = edgeLocal.finish()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	t.NodeCoverage = make([]int32, numNodes)
	t.EdgeCoverage = make([]int32, numEdges)
	for gid := int32(0); gid < numGroups; gid++ {
		t.nodeSets[gid].forEach(func(id int32) { t.NodeCoverage[id]++ })
		t.edgeSets[gid].forEach(func(id int32) { t.EdgeCoverage[id]++ })
	}
	return t, nil
}
