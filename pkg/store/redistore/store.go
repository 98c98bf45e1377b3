/*
The redistore package implements models.CentralityStore on Redis.

The scores of a run live in a sorted set with members "u,v", the metadata of
the run in a hash:

	<key>:scores  ZSET  "u,v" --> centrality
	<key>:meta    HASH  variant, kappa, rho, beta, seed
*/
package redistore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/utils/redisutils"
)

// DefaultKey is the key prefix used when none is specified.
const DefaultKey = "kpath"

// CentralityStore fulfills the CentralityStore interface defined in models.
type CentralityStore struct {
	client *redis.Client
	key    string
}

// NewCentralityStore() returns a CentralityStore that uses the keys with the
// specified prefix. An empty prefix means DefaultKey.
func NewCentralityStore(cl *redis.Client, key string) (*CentralityStore, error) {
	if cl == nil {
		return nil, models.ErrNilClientPointer
	}

	if key == "" {
		key = DefaultKey
	}

	return &CentralityStore{client: cl, key: key}, nil
}

// KeyScores() returns the key of the sorted set of the scores.
func (CS *CentralityStore) KeyScores() string {
	return CS.key + ":scores"
}

// KeyMeta() returns the key of the hash of the run metadata.
func (CS *CentralityStore) KeyMeta() string {
	return CS.key + ":meta"
}

// Validate() returns ErrNilStorePointer if CS or its client are nil.
func (CS *CentralityStore) Validate() error {
	if CS == nil {
		return models.ErrNilStorePointer
	}

	if CS.client == nil {
		return models.ErrNilClientPointer
	}

	return nil
}

// Save() atomically replaces the stored scores and metadata with the specified ones.
func (CS *CentralityStore) Save(ctx context.Context, meta models.Meta, scores models.CentralityMap) error {
	if err := CS.Validate(); err != nil {
		return err
	}

	members := make([]redis.Z, 0, len(scores))
	for edge, score := range scores {
		members = append(members, redis.Z{
			Score:  score,
			Member: redisutils.FormatEdge(models.NewEdge(edge.U, edge.V)),
		})
	}

	_, err := CS.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, CS.KeyScores(), CS.KeyMeta())
		if len(members) > 0 {
			pipe.ZAdd(ctx, CS.KeyScores(), members...)
		}
		pipe.HSet(ctx, CS.KeyMeta(), meta)
		return nil
	})
	return err
}

// Meta() returns the metadata of the last saved run.
func (CS *CentralityStore) Meta(ctx context.Context) (models.Meta, error) {
	if err := CS.Validate(); err != nil {
		return models.Meta{}, err
	}

	cmdReturn := CS.client.HMGet(ctx, CS.KeyMeta(), "variant", "kappa", "rho", "beta", "seed")
	if cmdReturn.Err() != nil {
		return models.Meta{}, cmdReturn.Err()
	}

	// Handle the empty store case
	if vals := cmdReturn.Val(); len(vals) == 0 || vals[0] == nil {
		return models.Meta{}, models.ErrEmptyStore
	}

	var meta models.Meta
	if err := cmdReturn.Scan(&meta); err != nil {
		return models.Meta{}, err
	}
	return meta, nil
}

// Size() returns the number of edges in the store (ignores errors).
func (CS *CentralityStore) Size(ctx context.Context) int {
	if CS.Validate() != nil {
		return 0
	}

	size, err := CS.client.ZCard(ctx, CS.KeyScores()).Result()
	if err != nil {
		return 0
	}
	return int(size)
}

// Score() returns the centrality of the specified edge.
func (CS *CentralityStore) Score(ctx context.Context, edge models.Edge) (float64, error) {
	if err := CS.Validate(); err != nil {
		return 0, err
	}

	member := redisutils.FormatEdge(models.NewEdge(edge.U, edge.V))
	score, err := CS.client.ZScore(ctx, CS.KeyScores(), member).Result()
	if errors.Is(err, redis.Nil) {
		if err := CS.checkSaved(ctx); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", models.ErrEdgeNotFoundStore, edge)
	}

	return score, err
}

// Top() returns the k edges with the highest centrality, sorted by descending
// score. Equal scores are sorted by ascending edge within the k returned.
func (CS *CentralityStore) Top(ctx context.Context, k int) ([]models.EdgeScore, error) {
	if err := CS.Validate(); err != nil {
		return nil, err
	}

	if k < 0 {
		return nil, fmt.Errorf("%w: k must be non-negative, got %d", models.ErrInvalidParameter, k)
	}

	if err := CS.checkSaved(ctx); err != nil {
		return nil, err
	}

	if k == 0 {
		return []models.EdgeScore{}, nil
	}

	members, err := CS.client.ZRevRangeWithScores(ctx, CS.KeyScores(), 0, int64(k-1)).Result()
	if err != nil {
		return nil, err
	}

	scores, err := parseMembers(members)
	if err != nil {
		return nil, err
	}

	models.SortScores(scores)
	return scores, nil
}

// All() returns every stored score as a CentralityMap.
func (CS *CentralityStore) All(ctx context.Context) (models.CentralityMap, error) {
	if err := CS.Validate(); err != nil {
		return nil, err
	}

	if err := CS.checkSaved(ctx); err != nil {
		return nil, err
	}

	members, err := CS.client.ZRangeWithScores(ctx, CS.KeyScores(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	scores, err := parseMembers(members)
	if err != nil {
		return nil, err
	}

	cm := make(models.CentralityMap, len(scores))
	for _, s := range scores {
		cm[s.Edge] = s.Score
	}
	return cm, nil
}

// checkSaved() returns ErrEmptyStore if no run has been saved. A saved run
// always has its metadata hash, even when it has no scores.
func (CS *CentralityStore) checkSaved(ctx context.Context) error {
	exists, err := CS.client.Exists(ctx, CS.KeyMeta()).Result()
	if err != nil {
		return err
	}

	if exists == 0 {
		return models.ErrEmptyStore
	}
	return nil
}

// parseMembers() parses the members of the sorted set into EdgeScores.
func parseMembers(members []redis.Z) ([]models.EdgeScore, error) {
	scores := make([]models.EdgeScore, 0, len(members))
	for _, z := range members {
		strEdge, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected member format: %v", z.Member)
		}

		edge, err := redisutils.ParseEdge(strEdge)
		if err != nil {
			return nil, err
		}

		scores = append(scores, models.EdgeScore{Edge: edge, Score: z.Score})
	}
	return scores, nil
}
