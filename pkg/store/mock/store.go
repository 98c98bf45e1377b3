package mock

import (
	"context"
	"fmt"

	"github.com/vertex-lab/kpath/pkg/models"
)

// CentralityStore is the in-memory version of the models.CentralityStore interface.
type CentralityStore struct {
	Scores models.CentralityMap
	meta   models.Meta
	saved  bool
}

// NewCentralityStore() returns an empty CentralityStore.
func NewCentralityStore() *CentralityStore {
	return &CentralityStore{Scores: make(models.CentralityMap)}
}

// Validate() returns ErrNilStorePointer if CS is nil, and ErrEmptyStore if
// nothing has been saved yet.
func (CS *CentralityStore) Validate() error {
	if CS == nil {
		return models.ErrNilStorePointer
	}

	if !CS.saved {
		return models.ErrEmptyStore
	}

	return nil
}

// Save() replaces the stored scores and metadata with the specified ones.
func (CS *CentralityStore) Save(ctx context.Context, meta models.Meta, scores models.CentralityMap) error {
	if CS == nil {
		return models.ErrNilStorePointer
	}

	CS.Scores = make(models.CentralityMap, len(scores))
	for edge, score := range scores {
		CS.Scores[edge] = score
	}

	CS.meta = meta
	CS.saved = true
	return nil
}

// Meta() returns the metadata of the last saved run.
func (CS *CentralityStore) Meta(ctx context.Context) (models.Meta, error) {
	if err := CS.Validate(); err != nil {
		return models.Meta{}, err
	}
	return CS.meta, nil
}

// Size() returns the number of edges in the store (0 if nil).
func (CS *CentralityStore) Size(ctx context.Context) int {
	if CS == nil {
		return 0
	}
	return len(CS.Scores)
}

// Score() returns the centrality of the specified edge.
func (CS *CentralityStore) Score(ctx context.Context, edge models.Edge) (float64, error) {
	if err := CS.Validate(); err != nil {
		return 0, err
	}

	score, exists := CS.Scores[models.NewEdge(edge.U, edge.V)]
	if !exists {
		return 0, fmt.Errorf("%w: %v", models.ErrEdgeNotFoundStore, edge)
	}
	return score, nil
}

// Top() returns the k edges with the highest centrality, sorted by descending score.
func (CS *CentralityStore) Top(ctx context.Context, k int) ([]models.EdgeScore, error) {
	if err := CS.Validate(); err != nil {
		return nil, err
	}

	if k < 0 {
		return nil, fmt.Errorf("%w: k must be non-negative, got %d", models.ErrInvalidParameter, k)
	}

	scores := models.Sorted(CS.Scores)
	if k < len(scores) {
		scores = scores[:k]
	}
	return scores, nil
}

// All() returns a copy of every stored score.
func (CS *CentralityStore) All(ctx context.Context) (models.CentralityMap, error) {
	if err := CS.Validate(); err != nil {
		return nil, err
	}

	scores := make(models.CentralityMap, len(CS.Scores))
	for edge, score := range CS.Scores {
		scores[edge] = score
	}
	return scores, nil
}
