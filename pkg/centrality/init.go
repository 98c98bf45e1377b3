package centrality

import (
	"fmt"

	"github.com/vertex-lab/kpath/pkg/models"
)

// InitUniformWeights() sets the weight of every edge to 1/E and returns 1/E.
// It returns ErrDegenerateGraph if G has no edges.
func InitUniformWeights(G models.WeightedGraph) (float64, error) {
	edgeCount := G.EdgeCount()
	if edgeCount == 0 {
		return 0, fmt.Errorf("%w: uniform weights need at least one edge", models.ErrDegenerateGraph)
	}

	weight := 1.0 / float64(edgeCount)
	if err := setAll(G, weight); err != nil {
		return 0, err
	}
	return weight, nil
}

// InitUnitWeights() sets the weight of every edge to 1.
func InitUnitWeights(G models.WeightedGraph) error {
	return setAll(G, 1)
}

// NormalizedDegrees() returns a map nodeID --> degree(nodeID) / N.
// It returns ErrDegenerateGraph if G has no nodes.
func NormalizedDegrees(G models.WeightedGraph) (map[int64]float64, error) {
	nodeCount := G.NodeCount()
	if nodeCount == 0 {
		return nil, fmt.Errorf("%w: normalized degrees need at least one node", models.ErrDegenerateGraph)
	}

	degrees := make(map[int64]float64, nodeCount)
	for _, nodeID := range G.Nodes() {
		degrees[nodeID] = float64(G.Degree(nodeID)) / float64(nodeCount)
	}
	return degrees, nil
}

func setAll(G models.WeightedGraph, weight float64) error {
	for _, edge := range G.Edges() {
		if err := G.SetWeight(edge, weight); err != nil {
			return err
		}
	}
	return nil
}
