package models

import (
	"errors"
	"slices"
)

// a map that associates each edge with its corrisponding centrality value
type CentralityMap map[Edge]float64

// EdgeScore is an edge with its centrality, the unit of the sorted results table.
type EdgeScore struct {
	Edge  Edge
	Score float64
}

// Sorted() returns the scores of the CentralityMap sorted by descending score.
// Ties are broken by ascending edge, so the order is deterministic.
func Sorted(cm CentralityMap) []EdgeScore {
	scores := make([]EdgeScore, 0, len(cm))
	for edge, score := range cm {
		scores = append(scores, EdgeScore{Edge: edge, Score: score})
	}

	SortScores(scores)
	return scores
}

// SortScores() sorts the scores in place by descending score, then ascending edge.
func SortScores(scores []EdgeScore) {
	slices.SortFunc(scores, func(a, b EdgeScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		case a.Edge.Less(b.Edge):
			return -1
		case b.Edge.Less(a.Edge):
			return 1
		default:
			return 0
		}
	})
}

// Snapshot() reads the current weight of every edge of G into a CentralityMap.
func Snapshot(G WeightedGraph) (CentralityMap, error) {
	if G == nil {
		return nil, ErrNilGraph
	}

	if err := G.Validate(); err != nil {
		return nil, err
	}

	edges := G.Edges()
	cm := make(CentralityMap, len(edges))
	for _, edge := range edges {
		weight, err := G.Weight(edge)
		if err != nil {
			return nil, err
		}
		cm[edge] = weight
	}

	return cm, nil
}

// Meta describes the run that produced a set of centrality scores.
type Meta struct {
	Variant string  `redis:"variant"`
	Kappa   int     `redis:"kappa"`
	Rho     int     `redis:"rho"`
	Beta    float64 `redis:"beta"`
	Seed    int64   `redis:"seed"`
}

//--------------------------ERROR-CODES--------------------------

var ErrInvalidParameter = errors.New("invalid parameter")
var ErrUnknownVariant = errors.New("unknown centrality variant")
