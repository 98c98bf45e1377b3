// The graph package implements the models.WeightedGraph interface on top of a
// gonum simple.WeightedUndirectedGraph.
package graph

import (
	"fmt"
	"math"
	"slices"

	"github.com/vertex-lab/kpath/pkg/models"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a simple undirected graph with a mutable weight on each edge.
// It is not safe for concurrent writes.
type Graph struct {
	wug *simple.WeightedUndirectedGraph

	// the number of edges, kept here so EdgeCount() doesn't scan the graph
	edgeCount int
}

// New() returns an empty Graph.
func New() *Graph {
	return &Graph{
		wug: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
	}
}

// FromEdges() returns a Graph with the specified edges, all with the same weight.
func FromEdges(edges []models.Edge, weight float64) (*Graph, error) {
	G := New()
	for _, edge := range edges {
		if err := G.AddEdge(edge.U, edge.V, weight); err != nil {
			return nil, err
		}
	}
	return G, nil
}

// Validate() returns an error if the graph is nil.
func (G *Graph) Validate() error {
	if G == nil || G.wug == nil {
		return models.ErrNilGraph
	}
	return nil
}

// ContainsNode() returns whether nodeID is in the graph.
func (G *Graph) ContainsNode(nodeID int64) bool {
	if G.Validate() != nil {
		return false
	}
	return G.wug.Node(nodeID) != nil
}

// ContainsEdge() returns whether the edge u-v is in the graph.
func (G *Graph) ContainsEdge(u, v int64) bool {
	if G.Validate() != nil || u == v {
		return false
	}
	return G.wug.HasEdgeBetween(u, v)
}

// AddNode() adds nodeID to the graph. Adding a node twice is a no-op.
func (G *Graph) AddNode(nodeID int64) error {
	if err := G.Validate(); err != nil {
		return err
	}

	if G.wug.Node(nodeID) == nil {
		G.wug.AddNode(simple.Node(nodeID))
	}
	return nil
}

// AddEdge() adds the undirected edge u-v with the specified weight, adding the
// endpoints if needed. Self-loops and parallel edges are rejected.
func (G *Graph) AddEdge(u, v int64, weight float64) error {
	if err := G.Validate(); err != nil {
		return err
	}

	if u == v {
		return fmt.Errorf("%w: node %d", models.ErrSelfLoop, u)
	}

	if err := validateWeight(weight); err != nil {
		return err
	}

	if G.wug.HasEdgeBetween(u, v) {
		return fmt.Errorf("%w: %v", models.ErrDuplicateEdge, models.NewEdge(u, v))
	}

	G.setEdge(models.NewEdge(u, v), weight)
	G.edgeCount++
	return nil
}

// NodeCount() returns the number of nodes in the graph (0 if nil).
func (G *Graph) NodeCount() int {
	if G.Validate() != nil {
		return 0
	}
	return G.wug.Nodes().Len()
}

// EdgeCount() returns the number of edges in the graph (0 if nil).
func (G *Graph) EdgeCount() int {
	if G.Validate() != nil {
		return 0
	}
	return G.edgeCount
}

// Nodes() returns the IDs of all nodes, sorted in ascending order.
func (G *Graph) Nodes() []int64 {
	if G.Validate() != nil {
		return []int64{}
	}
	return sortedIDs(G.wug.Nodes())
}

// Edges() returns all the canonical edges, sorted in ascending order.
func (G *Graph) Edges() []models.Edge {
	if G.Validate() != nil {
		return []models.Edge{}
	}

	edges := make([]models.Edge, 0, G.edgeCount)
	it := G.wug.Edges()
	for it.Next() {
		e := it.Edge()
		edges = append(edges, models.NewEdge(e.From().ID(), e.To().ID()))
	}

	slices.SortFunc(edges, compareEdges)
	return edges
}

// Neighbors() returns the IDs of the neighbors of nodeID, sorted in ascending order.
func (G *Graph) Neighbors(nodeID int64) ([]int64, error) {
	if err := G.Validate(); err != nil {
		return nil, err
	}

	if G.wug.Node(nodeID) == nil {
		return nil, fmt.Errorf("%w: %d", models.ErrNodeNotFound, nodeID)
	}

	return sortedIDs(G.wug.From(nodeID)), nil
}

// Degree() returns the number of edges incident to nodeID (0 if not found).
func (G *Graph) Degree(nodeID int64) int {
	if !G.ContainsNode(nodeID) {
		return 0
	}
	return G.wug.From(nodeID).Len()
}

// Weight() returns the weight of the edge.
func (G *Graph) Weight(e models.Edge) (float64, error) {
	if err := G.Validate(); err != nil {
		return 0, err
	}

	edge := G.wug.WeightedEdge(e.U, e.V)
	if edge == nil {
		return 0, fmt.Errorf("%w: %v", models.ErrEdgeNotFound, e)
	}

	return edge.Weight(), nil
}

// SetWeight() overwrites the weight of the edge.
func (G *Graph) SetWeight(e models.Edge, weight float64) error {
	if err := G.Validate(); err != nil {
		return err
	}

	if !G.ContainsEdge(e.U, e.V) {
		return fmt.Errorf("%w: %v", models.ErrEdgeNotFound, e)
	}

	if err := validateWeight(weight); err != nil {
		return err
	}

	G.setEdge(e, weight)
	return nil
}

// AddWeight() increments the weight of the edge by delta.
func (G *Graph) AddWeight(e models.Edge, delta float64) error {
	weight, err := G.Weight(e)
	if err != nil {
		return err
	}
	return G.SetWeight(e, weight+delta)
}

// setEdge() writes the edge, replacing an existing one between the same nodes.
func (G *Graph) setEdge(e models.Edge, weight float64) {
	G.wug.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(e.U),
		T: simple.Node(e.V),
		W: weight,
	})
}

func validateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("%w: %v", models.ErrNegativeWeight, weight)
	}
	return nil
}

func sortedIDs(it gonum.Nodes) []int64 {
	IDs := make([]int64, 0, it.Len())
	for it.Next() {
		IDs = append(IDs, it.Node().ID())
	}

	slices.Sort(IDs)
	return IDs
}

func compareEdges(a, b models.Edge) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
