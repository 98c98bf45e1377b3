package centrality_test

import (
	"fmt"
	"math/rand"

	"github.com/vertex-lab/kpath/pkg/centrality"
	"github.com/vertex-lab/kpath/pkg/graph"
	"github.com/vertex-lab/kpath/pkg/models"
)

func ExampleERW() {
	G, _ := graph.FromEdges(graph.Cycle(4), 0)
	params := centrality.Params{Kappa: 2, Rho: 4, Beta: 0.25}

	stats, err := centrality.ERW(G, params, rand.New(rand.NewSource(42)))
	if err != nil {
		fmt.Println(err)
		return
	}

	scores, _ := models.Snapshot(G)
	total := 0.0
	for _, score := range scores {
		total += score
	}

	fmt.Printf("walks: %d, steps: %d, total: %.2f\n", stats.Walks, stats.Steps, total)
	// Output: walks: 4, steps: 8, total: 3.00
}
