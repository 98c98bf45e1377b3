package walks

import (
	"math/rand"
	"slices"
	"sort"
)

// StartPicker chooses the node a walk starts from.
type StartPicker interface {
	Pick(rng *rand.Rand) int64
}

// UniformStart picks every node with the same probability.
type UniformStart struct {
	nodes []int64
}

// NewUniformStart() returns a UniformStart over a copy of nodes.
func NewUniformStart(nodes []int64) (*UniformStart, error) {
	if len(nodes) == 0 {
		return nil, ErrNoStartNodes
	}
	return &UniformStart{nodes: slices.Clone(nodes)}, nil
}

// Pick() returns a uniformly chosen node.
func (s *UniformStart) Pick(rng *rand.Rand) int64 {
	return s.nodes[rng.Intn(len(s.nodes))]
}

/*
DegreeStart picks nodes with probability proportional to their sampling
weight, typically the normalized degree, so that nodes with more connections
are more likely starting points.

The table is fixed at construction: the start distribution reflects the
topology of the graph, not the evolving edge weights.
*/
type DegreeStart struct {
	nodes      []int64
	cumulative []float64
	total      float64

	// index of the last node with positive weight
	last int
}

// NewDegreeStart() returns a DegreeStart that samples the nodes of the table
// proportionally to their weight. If every weight is zero (no node has edges),
// it samples the nodes uniformly.
func NewDegreeStart(table map[int64]float64) (*DegreeStart, error) {
	if len(table) == 0 {
		return nil, ErrNoStartNodes
	}

	// sort the nodes, so that the same seed gives the same walks
	nodes := make([]int64, 0, len(table))
	for nodeID := range table {
		nodes = append(nodes, nodeID)
	}
	slices.Sort(nodes)

	cumulative := make([]float64, len(nodes))
	total := 0.0
	last := 0
	for i, nodeID := range nodes {
		if weight := table[nodeID]; weight > 0 {
			total += weight
			last = i
		}
		cumulative[i] = total
	}

	return &DegreeStart{
		nodes:      nodes,
		cumulative: cumulative,
		total:      total,
		last:       last,
	}, nil
}

// Pick() returns a node with probability proportional to its weight.
func (s *DegreeStart) Pick(rng *rand.Rand) int64 {
	if s.total <= 0 {
		return s.nodes[rng.Intn(len(s.nodes))]
	}

	threshold := rng.Float64() * s.total
	i := sort.Search(len(s.cumulative), func(i int) bool {
		return s.cumulative[i] > threshold
	})

	if i == len(s.nodes) {
		i = s.last
	}
	return s.nodes[i]
}
