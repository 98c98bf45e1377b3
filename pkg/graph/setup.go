package graph

import (
	"math/rand"

	"github.com/vertex-lab/kpath/pkg/models"
)

// SetupGraph() returns a Graph setup based on the graphType, with all weights at zero.
// It is used in tests across packages.
func SetupGraph(graphType string) *Graph {
	switch graphType {
	case "nil":
		return nil

	case "empty":
		return New()

	case "isolated":
		G := New()
		G.AddNode(0)
		return G

	case "dandlings":
		G := New()
		for i := int64(0); i < 5; i++ {
			G.AddNode(i)
		}
		return G

	case "single-edge":
		return mustFromEdges([]models.Edge{{U: 0, V: 1}})

	case "edge-and-isolated":
		G := mustFromEdges([]models.Edge{{U: 0, V: 1}})
		G.AddNode(2)
		return G

	case "triangle":
		return mustFromEdges([]models.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})

	case "cycle4":
		return mustFromEdges(Cycle(4))

	case "path4":
		return mustFromEdges([]models.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})

	case "star":
		return mustFromEdges([]models.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}})

	case "bowtie":
		// two triangles sharing node 2
		return mustFromEdges([]models.Edge{
			{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2},
			{U: 2, V: 3}, {U: 3, V: 4}, {U: 2, V: 4},
		})

	default:
		return nil // Default to nil for unrecognized scenarios
	}
}

// Cycle() returns the edges of the cycle graph 0-1-...-(n-1)-0.
func Cycle(n int64) []models.Edge {
	if n < 3 {
		return []models.Edge{}
	}

	edges := make([]models.Edge, 0, n)
	for i := int64(0); i < n; i++ {
		edges = append(edges, models.NewEdge(i, (i+1)%n))
	}
	return edges
}

// GenerateRandom() returns a random simple graph with nodesSize nodes, where each
// node tries to add edgesPerNode edges to uniformly chosen nodes. Self-loops and
// parallel edges are discarded, so the actual degree can be lower.
func GenerateRandom(nodesSize, edgesPerNode int, rng *rand.Rand) *Graph {
	G := New()
	for i := 0; i < nodesSize; i++ {
		G.AddNode(int64(i))
	}

	for i := 0; i < nodesSize; i++ {
		for j := 0; j < edgesPerNode; j++ {
			v := int64(rng.Intn(nodesSize))
			if v == int64(i) || G.ContainsEdge(int64(i), v) {
				continue
			}

			G.AddEdge(int64(i), v, 0)
		}
	}

	return G
}

func mustFromEdges(edges []models.Edge) *Graph {
	G, err := FromEdges(edges, 0)
	if err != nil {
		panic(err)
	}
	return G
}
