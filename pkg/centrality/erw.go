package centrality

import (
	"math/rand"

	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/walks"
)

/*
ERW() runs the uniform-additive ERW-KPath on G, and leaves the centrality of
each edge as its weight.

Every edge weight is set to 1/E; then rho walks of at most kappa steps are
performed, each from a uniformly chosen node, choosing uniformly among the
untraversed incident edges and adding beta to the weight of each traversed
edge. There is no normalization: beta already sets the scale of the scores.

It returns ErrDegenerateGraph if G has no edges, and ErrInvalidParameter
if the parameters are invalid. It accepts a random number generator for
reproducibility in tests.
*/
func ERW(G models.WeightedGraph, params Params, rng *rand.Rand) (Stats, error) {
	if err := checkInputs(G, params); err != nil {
		return Stats{}, err
	}

	if rng == nil {
		return Stats{}, ErrNilRNG
	}

	if _, err := InitUniformWeights(G); err != nil {
		return Stats{}, err
	}

	sampler, err := newUniformSampler(G, params)
	if err != nil {
		return Stats{}, err
	}

	stats := newStats()
	for i := 0; i < params.Rho; i++ {
		walk, err := sampler.Walk(G, G, rng)
		if err != nil {
			return Stats{}, err
		}
		stats.add(walk)
	}

	return stats, nil
}

// newUniformSampler() returns the Sampler of ERW-KPath. It doesn't read edge
// weights, so it's safe to share between goroutines that don't write to G.
func newUniformSampler(G models.WeightedGraph, params Params) (*walks.Sampler, error) {
	start, err := walks.NewUniformStart(G.Nodes())
	if err != nil {
		return nil, err
	}

	return &walks.Sampler{
		Kappa:     params.Kappa,
		Increment: params.Beta,
		Start:     start,
		Select:    walks.SelectUniform,
	}, nil
}
