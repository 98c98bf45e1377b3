package walks

import (
	"fmt"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/kpath/pkg/models"
)

// Selector chooses the next edge of a walk among the candidates, which are
// the untraversed edges incident to the current node.
type Selector func(G models.WeightedGraph, candidates []models.Edge, rng *rand.Rand) (models.Edge, error)

// UnvisitedEdges() returns the edges incident to nodeID that are not in visited,
// sorted by the ID of the other endpoint.
func UnvisitedEdges(G models.WeightedGraph, nodeID int64,
	visited mapset.Set[models.Edge]) ([]models.Edge, error) {

	neighbors, err := G.Neighbors(nodeID)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Edge, 0, len(neighbors))
	for _, neighbor := range neighbors {
		edge := models.NewEdge(nodeID, neighbor)
		if visited.Contains(edge) {
			continue
		}
		candidates = append(candidates, edge)
	}

	return candidates, nil
}

// UniformChoice() returns one of the candidates, chosen uniformly at random
// regardless of the edge weights.
func UniformChoice(candidates []models.Edge, rng *rand.Rand) (models.Edge, error) {
	if len(candidates) == 0 {
		return models.Edge{}, ErrNoCandidates
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// SelectUniform() is the Selector of the uniform-additive variant.
func SelectUniform(_ models.WeightedGraph, candidates []models.Edge, rng *rand.Rand) (models.Edge, error) {
	return UniformChoice(candidates, rng)
}

// SelectWeighted() is the Selector of the weighted variant: it returns one of
// the candidates with probability proportional to its current weight.
// The weights are read from G at every call, since walks keep changing them.
func SelectWeighted(G models.WeightedGraph, candidates []models.Edge, rng *rand.Rand) (models.Edge, error) {
	if len(candidates) == 0 {
		return models.Edge{}, ErrNoCandidates
	}

	weights := make([]float64, len(candidates))
	for i, edge := range candidates {
		weight, err := G.Weight(edge)
		if err != nil {
			return models.Edge{}, err
		}
		weights[i] = weight
	}

	return candidates[WeightedIndex(weights, rng)], nil
}

/*
WeightedIndex() returns an index of weights with probability proportional to
its weight, using a cumulative scan. Weights are assumed non-negative and
weights must not be empty.

If all weights are zero, the index is chosen uniformly.
*/
func WeightedIndex(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, weight := range weights {
		total += weight
	}

	if total <= 0 {
		return rng.Intn(len(weights))
	}

	threshold := rng.Float64() * total
	cumulative := 0.0
	last := 0

	for i, weight := range weights {
		if weight <= 0 {
			continue
		}

		cumulative += weight
		last = i
		if threshold < cumulative {
			return i
		}
	}

	// rounding can leave threshold just above the last cumulative sum
	return last
}

// checkSelection() returns an error if the selector returned an edge that is
// not among the candidates.
func checkSelection(edge models.Edge, candidates []models.Edge) error {
	for _, candidate := range candidates {
		if candidate == edge {
			return nil
		}
	}
	return fmt.Errorf("%w: selected edge %v is not a candidate", models.ErrInvalidParameter, edge)
}
