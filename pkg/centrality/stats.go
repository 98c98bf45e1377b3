package centrality

import (
	"errors"

	"github.com/vertex-lab/kpath/pkg/models"
	"github.com/vertex-lab/kpath/pkg/walks"
)

// Stats summarize the walks of a run.
type Stats struct {
	// The number of walks performed.
	Walks int

	// The total number of edges traversed across all walks.
	Steps int

	// The number of walks that stopped before kappa steps.
	DeadEnds int

	// The number of times each edge has been traversed.
	Traversals map[models.Edge]int
}

func newStats() Stats {
	return Stats{Traversals: make(map[models.Edge]int)}
}

// add() records the walk in the stats.
func (s *Stats) add(walk walks.Walk) {
	s.Walks++
	s.Steps += walk.Steps()
	if walk.DeadEnd {
		s.DeadEnds++
	}

	for _, edge := range walk.Edges {
		s.Traversals[edge]++
	}
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilRNG = errors.New("nil random number generator")
