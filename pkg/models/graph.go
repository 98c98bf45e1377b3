/*
The models package defines the fundamental structures and interfaces used in this project.
Interfaces:

WeightedGraph:
The WeightedGraph interface abstracts the in-memory undirected graph whose edge
weights are read and mutated by the random walks of the centrality package.

CentralityStore:
The CentralityStore interface abstracts where the final edge centrality scores
are kept after a run, allowing for multiple implementations.
*/
package models

import (
	"errors"
	"fmt"
)

// Edge is an undirected edge between two distinct nodes. Edges are always
// built with NewEdge, so that {u,v} and {v,u} are the same map key.
type Edge struct {
	U int64
	V int64
}

// NewEdge() returns the canonical edge between u and v, with U < V.
func NewEdge(u, v int64) Edge {
	if u > v {
		return Edge{U: v, V: u}
	}
	return Edge{U: u, V: v}
}

// Other() returns the endpoint of the edge that is not nodeID.
// If nodeID is not an endpoint, it returns ErrNodeNotInEdge.
func (e Edge) Other(nodeID int64) (int64, error) {
	switch nodeID {
	case e.U:
		return e.V, nil
	case e.V:
		return e.U, nil
	default:
		return 0, fmt.Errorf("%w: node %d, edge %v", ErrNodeNotInEdge, nodeID, e)
	}
}

// String() formats the edge as "u, v", the format used in the results table.
func (e Edge) String() string {
	return fmt.Sprintf("%d, %d", e.U, e.V)
}

// Less() reports whether e sorts before other (by U, then by V).
func (e Edge) Less(other Edge) bool {
	if e.U != other.U {
		return e.U < other.U
	}
	return e.V < other.V
}

// The WeightedGraph interface abstracts a simple undirected graph (no self-loops,
// no parallel edges) with a mutable float64 weight on each edge.
type WeightedGraph interface {
	// Validate() returns the appropriate error if the graph is nil.
	Validate() error

	// NodeCount() returns the number of nodes in the graph.
	NodeCount() int

	// EdgeCount() returns the number of edges in the graph.
	EdgeCount() int

	// Nodes() returns the IDs of all nodes, sorted in ascending order.
	Nodes() []int64

	// Edges() returns all the canonical edges, sorted in ascending order.
	Edges() []Edge

	// Neighbors() returns the IDs of the neighbors of nodeID, sorted in ascending order.
	Neighbors(nodeID int64) ([]int64, error)

	// Degree() returns the number of edges incident to nodeID (0 if not found).
	Degree(nodeID int64) int

	// Weight() returns the weight of the edge.
	Weight(e Edge) (float64, error)

	// SetWeight() overwrites the weight of the edge.
	SetWeight(e Edge, weight float64) error

	// AddWeight() increments the weight of the edge by delta.
	AddWeight(e Edge, delta float64) error
}

//--------------------------ERROR-CODES--------------------------

var ErrNilGraph = errors.New("graph pointer is nil")
var ErrDegenerateGraph = errors.New("degenerate graph")
var ErrNodeNotFound = errors.New("node not found in the graph")
var ErrEdgeNotFound = errors.New("edge not found in the graph")
var ErrNodeNotInEdge = errors.New("node is not an endpoint of the edge")
var ErrSelfLoop = errors.New("self-loops are not allowed")
var ErrDuplicateEdge = errors.New("edge already in the graph")
var ErrNegativeWeight = errors.New("edge weight must be finite and non-negative")
