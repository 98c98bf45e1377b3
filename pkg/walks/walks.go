/*
The walks package implements the bounded random walks used to estimate edge
centrality. A walk starts at a sampled node and, at each step, traverses one of
the incident edges it has not traversed yet, adding an increment to the weight
of that edge. The walk stops after kappa steps or when it reaches a node whose
incident edges have all been traversed by the walk itself.
*/
package walks

import (
	"errors"

	"github.com/vertex-lab/kpath/pkg/models"
)

// Walk represent the edges traversed during a walk, in order, starting from Start.
type Walk struct {
	Start int64
	Edges []models.Edge

	// DeadEnd is true if the walk stopped before exhausting its steps because
	// the current node had no untraversed incident edges left.
	DeadEnd bool
}

// Steps() returns the number of edges traversed by the walk.
func (w Walk) Steps() int {
	return len(w.Edges)
}

// Nodes() returns the sequence of nodes visited by the walk, starting from Start.
func (w Walk) Nodes() ([]int64, error) {
	nodes := make([]int64, 0, len(w.Edges)+1)
	nodes = append(nodes, w.Start)

	current := w.Start
	for _, edge := range w.Edges {
		next, err := edge.Other(current)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, next)
		current = next
	}

	return nodes, nil
}

// The Accumulator receives the weight increments of the traversed edges.
// Any models.WeightedGraph is an Accumulator.
type Accumulator interface {
	AddWeight(e models.Edge, delta float64) error
}

// Deltas is an Accumulator that keeps the increments in memory, so that
// walks can run without writing to a shared graph.
type Deltas map[models.Edge]float64

// AddWeight() adds delta to the increment of the edge.
func (d Deltas) AddWeight(e models.Edge, delta float64) error {
	d[e] += delta
	return nil
}

// Merge() adds the increments of other into d.
func (d Deltas) Merge(other Deltas) {
	for edge, delta := range other {
		d[edge] += delta
	}
}

// ApplyTo() adds every increment to the weight of the corresponding edge of acc.
func (d Deltas) ApplyTo(acc Accumulator) error {
	if acc == nil {
		return ErrNilAccumulator
	}

	for edge, delta := range d {
		if err := acc.AddWeight(edge, delta); err != nil {
			return err
		}
	}
	return nil
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilAccumulator = errors.New("nil accumulator")
var ErrNilSampler = errors.New("nil sampler")
var ErrNilStartPicker = errors.New("nil start picker")
var ErrNilSelector = errors.New("nil edge selector")
var ErrNoCandidates = errors.New("no candidate edges to choose from")
var ErrNoStartNodes = errors.New("no nodes to start the walks from")
