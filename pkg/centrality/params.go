/*
The centrality package estimates the edge centrality of an undirected graph by
running rho bounded random walks of at most kappa steps, and accumulating a
score on every traversed edge. Two variants are implemented:

ERW-KPath (uniform-additive): walks start from a uniformly chosen node and
choose the next edge uniformly. Edge weights start at 1/E and every
traversal adds beta.

WERW-KPath (weighted): walks start from a node chosen proportionally to its
normalized degree and choose the next edge proportionally to its current
weight. Edge weights start at 1, every traversal adds 1, and the final
weights are divided by rho.

The final edge weights of the graph are the centrality scores.

# REFERENCES

[1] P. De Meo, E. Ferrara, G. Fiumara, A. Ricciardello; "A novel measure of edge
centrality in social networks", Knowledge-Based Systems, 2012
*/
package centrality

import (
	"fmt"
	"math"

	"github.com/vertex-lab/kpath/pkg/models"
)

// DefaultKappa is the maximum walk length used when none is specified.
const DefaultKappa = 3

// Params are the parameters of a run.
type Params struct {
	// The maximum number of edges traversed in a single walk.
	Kappa int

	// The number of walks.
	Rho int

	// The weight increment of each traversal. Only used by ERW-KPath.
	Beta float64
}

// DefaultParams() returns kappa = 3, rho = E and beta = 1/E for the graph G.
// If G has no edges, beta is 0.
func DefaultParams(G models.WeightedGraph) Params {
	params := Params{Kappa: DefaultKappa}
	if G == nil || G.Validate() != nil {
		return params
	}

	edgeCount := G.EdgeCount()
	params.Rho = edgeCount
	if edgeCount > 0 {
		params.Beta = 1.0 / float64(edgeCount)
	}
	return params
}

// Validate() returns ErrInvalidParameter if kappa or rho are negative, or beta
// is negative or not finite.
func (p Params) Validate() error {
	if p.Kappa < 0 {
		return fmt.Errorf("%w: kappa must be non-negative, got %d", models.ErrInvalidParameter, p.Kappa)
	}

	if p.Rho < 0 {
		return fmt.Errorf("%w: rho must be non-negative, got %d", models.ErrInvalidParameter, p.Rho)
	}

	if math.IsNaN(p.Beta) || math.IsInf(p.Beta, 0) || p.Beta < 0 {
		return fmt.Errorf("%w: beta must be finite and non-negative, got %v", models.ErrInvalidParameter, p.Beta)
	}

	return nil
}

// checkInputs function is used to check whether the inputs are valid.
// If not, an appropriate error is returned
func checkInputs(G models.WeightedGraph, params Params) error {
	if G == nil {
		return models.ErrNilGraph
	}

	if err := G.Validate(); err != nil {
		return err
	}

	return params.Validate()
}
