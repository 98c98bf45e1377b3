package centrality

import (
	"fmt"
	"math/rand"

	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/walks"
)

/*
WERW() runs the weighted WERW-KPath on G, and leaves the centrality of each
edge as its weight.

Every edge weight is set to 1; then rho walks of at most kappa steps are
performed, each from a node chosen proportionally to its normalized degree,
choosing among the untraversed incident edges proportionally to their current
weight and adding 1 to the weight of each traversed edge. Finally every weight
is divided by rho.

Walks must run one after the other: each walk samples edges using the weights
left by the previous ones. Params.Beta is ignored.

It returns ErrDegenerateGraph if G has no nodes, and ErrInvalidParameter
if the parameters are invalid.
*/
func WERW(G models.WeightedGraph, params Params, rng *rand.Rand) (Stats, error) {
	if err := checkInputs(G, params); err != nil {
		return Stats{}, err
	}

	if rng == nil {
		return Stats{}, ErrNilRNG
	}

	degrees, err := NormalizedDegrees(G)
	if err != nil {
		return Stats{}, err
	}

	if err := InitUnitWeights(G); err != nil {
		return Stats{}, err
	}

	// the start distribution is computed once, on the topology of G
	start, err := walks.NewDegreeStart(degrees)
	if err != nil {
		return Stats{}, err
	}

	sampler := &walks.Sampler{
		Kappa:     params.Kappa,
		Increment: 1,
		Start:     start,
		Select:    walks.SelectWeighted,
	}

	stats := newStats()
	for i := 0; i < params.Rho; i++ {
		walk, err := sampler.Walk(G, G, rng)
		if err != nil {
			return Stats{}, err
		}
		stats.add(walk)
	}

	if err := Normalize(G, params.Rho); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// Normalize() divides the weight of every edge by rho, turning the
// accumulated increments into a mean per walk. If rho is 0, it does nothing.
func Normalize(G models.WeightedGraph, rho int) error {
	if rho < 0 {
		return fmt.Errorf("%w: rho must be non-negative, got %d", models.ErrInvalidParameter, rho)
	}

	if rho == 0 {
		return nil
	}

	for _, edge := range G.Edges() {
		weight, err := G.Weight(edge)
		if err != nil {
			return err
		}

		if err := G.SetWeight(edge, weight/float64(rho)); err != nil {
			return err
		}
	}

	return nil
}
