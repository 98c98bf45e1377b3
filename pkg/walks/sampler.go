package walks

import (
	"fmt"
	"math"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/kpath/pkg/models"
)

/*
Sampler performs single walks. The walk goes through three states:

  - Start: the first node is chosen by the StartPicker.
  - Stepping: while fewer than Kappa edges have been traversed and the current
    node has untraversed incident edges, the Selector chooses one of them, its
    weight is increased by Increment, it is marked as visited and the walk
    moves to its other endpoint.
  - Done: Kappa edges have been traversed, or the walk reached a dead end.

Visited edges are tracked per walk: an edge traversed by one walk can be
traversed again by the next one.
*/
type Sampler struct {
	// The maximum number of edges traversed in a single walk.
	Kappa int

	// The amount added to the weight of each traversed edge.
	Increment float64

	Start  StartPicker
	Select Selector
}

// Validate() returns the appropriate error if the Sampler can't perform walks.
func (s *Sampler) Validate() error {
	if s == nil {
		return ErrNilSampler
	}

	if s.Kappa < 0 {
		return fmt.Errorf("%w: kappa must be non-negative, got %d", models.ErrInvalidParameter, s.Kappa)
	}

	if math.IsNaN(s.Increment) || math.IsInf(s.Increment, 0) || s.Increment < 0 {
		return fmt.Errorf("%w: increment must be finite and non-negative, got %v", models.ErrInvalidParameter, s.Increment)
	}

	if s.Start == nil {
		return ErrNilStartPicker
	}

	if s.Select == nil {
		return ErrNilSelector
	}

	return nil
}

// Walk() performs one walk on G from a node chosen by the StartPicker, sending
// the weight increments to acc.
func (s *Sampler) Walk(G models.WeightedGraph, acc Accumulator, rng *rand.Rand) (Walk, error) {
	if err := s.Validate(); err != nil {
		return Walk{}, err
	}

	return s.walk(G, acc, s.Start.Pick(rng), rng)
}

// WalkFrom() performs one walk on G from the specified node, sending the weight
// increments to acc. Edge selection reads the weights from G, so acc should be
// G itself unless the Selector ignores weights.
func (s *Sampler) WalkFrom(G models.WeightedGraph, acc Accumulator,
	start int64, rng *rand.Rand) (Walk, error) {

	if err := s.Validate(); err != nil {
		return Walk{}, err
	}

	return s.walk(G, acc, start, rng)
}

// walk() performs the walk of a valid Sampler.
func (s *Sampler) walk(G models.WeightedGraph, acc Accumulator,
	start int64, rng *rand.Rand) (Walk, error) {

	// check if start is in the graph
	if _, err := G.Neighbors(start); err != nil {
		return Walk{}, err
	}

	// a walk never traverses an edge twice, so it has at most EdgeCount() steps
	capacity := min(s.Kappa, G.EdgeCount())
	walk := Walk{Start: start, Edges: make([]models.Edge, 0, capacity)}
	visited := mapset.NewThreadUnsafeSetWithSize[models.Edge](capacity)
	current := start

	for walk.Steps() < s.Kappa {
		candidates, err := UnvisitedEdges(G, current, visited)
		if err != nil {
			return Walk{}, err
		}

		if len(candidates) == 0 {
			walk.DeadEnd = true
			break
		}

		edge, err := s.Select(G, candidates, rng)
		if err != nil {
			return Walk{}, err
		}

		if err := checkSelection(edge, candidates); err != nil {
			return Walk{}, err
		}

		if err := acc.AddWeight(edge, s.Increment); err != nil {
			return Walk{}, err
		}

		visited.Add(edge)
		walk.Edges = append(walk.Edges, edge)

		current, err = edge.Other(current)
		if err != nil {
			return Walk{}, err
		}
	}

	return walk, nil
}
