package centrality

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/utils/counter"
	"github.com/vertex-lab/kpath/pkg/walks"
)

// Strategy is how the workers of ParallelERW accumulate their increments.
type Strategy string

const (
	// MergeLocal gives each worker its own walks.Deltas. After all workers
	// are done they are merged in worker order and added to the graph.
	MergeLocal Strategy = "merge"

	// AtomicCells makes all workers add to shared per-edge atomic counters,
	// which are written into the graph after all workers are done.
	AtomicCells Strategy = "atomic"
)

// ParseStrategy() returns the Strategy with the specified name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(MergeLocal):
		return MergeLocal, nil
	case string(AtomicCells):
		return AtomicCells, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", models.ErrInvalidParameter, name)
	}
}

/*
ParallelERW() runs ERW-KPath on G with the walks split across workers.

This is valid only for the uniform-additive variant: its edge choices don't
depend on the weights, and the increments add up in any order. Each worker
has its own random number generator seeded with seed + workerIndex, so for a
fixed seed and number of workers the result is deterministic with the
MergeLocal strategy. With AtomicCells the order of the additions depends on
the scheduler, so results can differ in the last bits.

No worker writes to G while the walks are running.
*/
func ParallelERW(G models.WeightedGraph, params Params, seed int64,
	workers int, strategy Strategy) (Stats, error) {

	if err := checkInputs(G, params); err != nil {
		return Stats{}, err
	}

	if workers <= 0 {
		return Stats{}, fmt.Errorf("%w: workers must be positive, got %d", models.ErrInvalidParameter, workers)
	}

	if strategy != MergeLocal && strategy != AtomicCells {
		return Stats{}, fmt.Errorf("%w: unknown strategy %q", models.ErrInvalidParameter, strategy)
	}

	if _, err := InitUniformWeights(G); err != nil {
		return Stats{}, err
	}

	sampler, err := newUniformSampler(G, params)
	if err != nil {
		return Stats{}, err
	}

	var cells atomicCells
	if strategy == AtomicCells {
		cells = newAtomicCells(G.Edges())
	}

	deltas := make([]walks.Deltas, workers)
	traversals := make([]map[models.Edge]int, workers)
	errs := make([]error, workers)

	// shared by all workers
	walkCount := xsync.NewCounter()
	steps := xsync.NewCounter()
	deadEnds := xsync.NewCounter()

	var wg sync.WaitGroup
	for w, share := range split(params.Rho, workers) {
		wg.Add(1)
		go func(w, share int) {
			defer wg.Done()

			var acc walks.Accumulator
			switch strategy {
			case AtomicCells:
				acc = cells
			default:
				deltas[w] = make(walks.Deltas)
				acc = deltas[w]
			}

			rng := rand.New(rand.NewSource(seed + int64(w)))
			traversals[w] = make(map[models.Edge]int)

			for i := 0; i < share; i++ {
				walk, err := sampler.Walk(G, acc, rng)
				if err != nil {
					errs[w] = err
					return
				}

				walkCount.Inc()
				steps.Add(int64(walk.Steps()))
				if walk.DeadEnd {
					deadEnds.Inc()
				}

				for _, edge := range walk.Edges {
					traversals[w][edge]++
				}
			}
		}(w, share)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return Stats{}, err
	}

	switch strategy {
	case AtomicCells:
		if err := cells.flush(G); err != nil {
			return Stats{}, err
		}

	default:
		// fold in worker order, then write every edge once
		merged := make(walks.Deltas)
		for _, d := range deltas {
			merged.Merge(d)
		}

		if err := merged.ApplyTo(G); err != nil {
			return Stats{}, err
		}
	}

	stats := newStats()
	stats.Walks = int(walkCount.Value())
	stats.Steps = int(steps.Value())
	stats.DeadEnds = int(deadEnds.Value())
	for _, t := range traversals {
		for edge, count := range t {
			stats.Traversals[edge] += count
		}
	}

	return stats, nil
}

// split() divides rho walks into workers shares that differ by at most one.
func split(rho, workers int) []int {
	shares := make([]int, workers)
	for w := range shares {
		shares[w] = rho / workers
		if w < rho%workers {
			shares[w]++
		}
	}
	return shares
}

// atomicCells is an Accumulator over a fixed set of edges, safe for concurrent use.
// The map itself is never written after construction.
type atomicCells map[models.Edge]*counter.Float

func newAtomicCells(edges []models.Edge) atomicCells {
	cells := make(atomicCells, len(edges))
	for _, edge := range edges {
		cells[edge] = counter.NewFloatCounter()
	}
	return cells
}

// AddWeight() atomically adds delta to the cell of the edge.
func (c atomicCells) AddWeight(e models.Edge, delta float64) error {
	cell, exists := c[e]
	if !exists {
		return fmt.Errorf("%w: %v", models.ErrEdgeNotFound, e)
	}

	cell.Add(delta)
	return nil
}

// flush() adds the value of every cell to the weight of its edge in G.
func (c atomicCells) flush(G models.WeightedGraph) error {
	for edge, cell := range c {
		if err := G.AddWeight(edge, cell.Load()); err != nil {
			return err
		}
	}
	return nil
}
