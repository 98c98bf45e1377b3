package models

import (
	"context"
	"errors"
)

// CentralityStore handles the operations to save and query the centrality
// scores produced by a run.
//
// Meta, Score, Top and All return ErrEmptyStore if no run has been saved.
// A saved run without scores is not empty: Top and All return no scores.
type CentralityStore interface {
	// Save() replaces the stored scores and metadata with the specified ones.
	Save(ctx context.Context, meta Meta, scores CentralityMap) error

	// Meta() returns the metadata of the last saved run.
	Meta(ctx context.Context) (Meta, error)

	// Size() returns the number of edges in the store (ignores errors).
	Size(ctx context.Context) int

	// Score() returns the centrality of the specified edge.
	Score(ctx context.Context, edge Edge) (float64, error)

	// Top() returns the k edges with the highest centrality, sorted by descending score.
	Top(ctx context.Context, k int) ([]EdgeScore, error)

	// All() returns every stored score as a CentralityMap.
	All(ctx context.Context) (CentralityMap, error)
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilStorePointer = errors.New("nil centrality store pointer")
var ErrEmptyStore = errors.New("centrality store is empty")
var ErrEdgeNotFoundStore = errors.New("edge not found in the centrality store")
var ErrNilClientPointer = errors.New("nil client pointer")
