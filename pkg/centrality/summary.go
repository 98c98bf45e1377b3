package centrality

import (
	"sort"

	"github.com/vertex-lab/kpath/pkg/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of the centrality scores of a run.
type Summary struct {
	Edges  int
	Total  float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize() returns the Summary of the scores. The zero Summary is
// returned if there are no scores, and StdDev is 0 with a single score.
func Summarize(scores models.CentralityMap) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	values := make([]float64, 0, len(scores))
	for _, score := range scores {
		values = append(values, score)
	}
	sort.Float64s(values)

	summary := Summary{
		Edges:  len(values),
		Total:  floats.Sum(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
	}

	if len(values) < 2 {
		summary.Mean = values[0]
		return summary
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
	return summary
}
