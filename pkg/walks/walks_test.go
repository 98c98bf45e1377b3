package walks

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/vertex-lab/kpath/pkg/graph"
	"github.com/vertex-lab/kpath/pkg/models"
)

func TestUnvisitedEdges(t *testing.T) {
	testCases := []struct {
		name               string
		graphType          string
		nodeID             int64
		visited            []models.Edge
		expectedCandidates []models.Edge
		expectedError      error
	}{
		{
			name:               "node not found",
			graphType:          "triangle",
			nodeID:             9,
			expectedCandidates: nil,
			expectedError:      models.ErrNodeNotFound,
		},
		{
			name:               "isolated node",
			graphType:          "isolated",
			nodeID:             0,
			expectedCandidates: []models.Edge{},
			expectedError:      nil,
		},
		{
			name:               "nothing visited",
			graphType:          "triangle",
			nodeID:             1,
			expectedCandidates: []models.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
			expectedError:      nil,
		},
		{
			name:               "one visited, reversed direction",
			graphType:          "triangle",
			nodeID:             1,
			visited:            []models.Edge{models.NewEdge(1, 0)},
			expectedCandidates: []models.Edge{{U: 1, V: 2}},
			expectedError:      nil,
		},
		{
			name:               "all visited",
			graphType:          "triangle",
			nodeID:             1,
			visited:            []models.Edge{{U: 0, V: 1}, {U: 1, V: 2}},
			expectedCandidates: []models.Edge{},
			expectedError:      nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			G := graph.SetupGraph(test.graphType)
			visited := mapset.NewThreadUnsafeSet(test.visited...)

			candidates, err := UnvisitedEdges(G, test.nodeID, visited)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("UnvisitedEdges(): expected %v, got %v", test.expectedError, err)
			}

			if !reflect.DeepEqual(candidates, test.expectedCandidates) {
				t.Errorf("UnvisitedEdges(): expected %v, got %v", test.expectedCandidates, candidates)
			}
		})
	}
}

func TestUniformChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	if _, err := UniformChoice([]models.Edge{}, rng); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("UniformChoice(): expected %v, got %v", ErrNoCandidates, err)
	}

	candidates := []models.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}
	counts := make(map[models.Edge]int)
	const draws = 30000

	for i := 0; i < draws; i++ {
		edge, err := UniformChoice(candidates, rng)
		if err != nil {
			t.Fatalf("UniformChoice(): expected nil, got %v", err)
		}
		counts[edge]++
	}

	for _, edge := range candidates {
		freq := float64(counts[edge]) / draws
		if math.Abs(freq-1.0/3.0) > 0.02 {
			t.Errorf("UniformChoice(): expected frequency ~%v for %v, got %v", 1.0/3.0, edge, freq)
		}
	}
}

func TestWeightedIndex(t *testing.T) {
	const draws = 100000

	testCases := []struct {
		name          string
		weights       []float64
		expectedFreqs []float64
	}{
		{
			name:          "single weight",
			weights:       []float64{5},
			expectedFreqs: []float64{1},
		},
		{
			name:          "proportional",
			weights:       []float64{1, 3},
			expectedFreqs: []float64{0.25, 0.75},
		},
		{
			name:          "zero weights are never chosen",
			weights:       []float64{0, 2, 0, 2},
			expectedFreqs: []float64{0, 0.5, 0, 0.5},
		},
		{
			name:          "all zero weights, uniform",
			weights:       []float64{0, 0},
			expectedFreqs: []float64{0.5, 0.5},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			counts := make([]int, len(test.weights))

			for i := 0; i < draws; i++ {
				counts[WeightedIndex(test.weights, rng)]++
			}

			for i, expected := range test.expectedFreqs {
				freq := float64(counts[i]) / draws
				if expected == 0 && counts[i] != 0 {
					t.Errorf("WeightedIndex(): index %d has zero weight but was chosen %d times", i, counts[i])
				}

				if math.Abs(freq-expected) > 0.01 {
					t.Errorf("WeightedIndex(): expected frequency %v for index %d, got %v", expected, i, freq)
				}
			}
		})
	}
}

func TestSelectWeighted(t *testing.T) {
	G := graph.SetupGraph("star")
	G.SetWeight(models.NewEdge(0, 1), 0)
	G.SetWeight(models.NewEdge(0, 2), 1)
	rng := rand.New(rand.NewSource(42))

	if _, err := SelectWeighted(G, []models.Edge{}, rng); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("SelectWeighted(): expected %v, got %v", ErrNoCandidates, err)
	}

	missing := []models.Edge{models.NewEdge(1, 2)}
	if _, err := SelectWeighted(G, missing, rng); !errors.Is(err, models.ErrEdgeNotFound) {
		t.Errorf("SelectWeighted(): expected %v, got %v", models.ErrEdgeNotFound, err)
	}

	candidates := []models.Edge{models.NewEdge(0, 1), models.NewEdge(0, 2)}
	for i := 0; i < 1000; i++ {
		edge, err := SelectWeighted(G, candidates, rng)
		if err != nil {
			t.Fatalf("SelectWeighted(): expected nil, got %v", err)
		}

		if edge != models.NewEdge(0, 2) {
			t.Fatalf("SelectWeighted(): expected %v, got %v", models.NewEdge(0, 2), edge)
		}
	}
}

func TestUniformStart(t *testing.T) {
	if _, err := NewUniformStart(nil); !errors.Is(err, ErrNoStartNodes) {
		t.Fatalf("NewUniformStart(): expected %v, got %v", ErrNoStartNodes, err)
	}

	nodes := []int64{3, 5, 8}
	start, err := NewUniformStart(nodes)
	if err != nil {
		t.Fatalf("NewUniformStart(): expected nil, got %v", err)
	}

	// the picker keeps its own copy
	nodes[0] = 100

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		nodeID := start.Pick(rng)
		if nodeID != 3 && nodeID != 5 && nodeID != 8 {
			t.Fatalf("Pick(): expected one of [3 5 8], got %v", nodeID)
		}
	}
}

func TestDegreeStart(t *testing.T) {
	const draws = 100000

	testCases := []struct {
		name          string
		table         map[int64]float64
		expectedFreqs map[int64]float64
		expectedError error
	}{
		{
			name:          "empty table",
			table:         map[int64]float64{},
			expectedError: ErrNoStartNodes,
		},
		{
			name:          "star graph degrees",
			table:         map[int64]float64{0: 0.8, 1: 0.2, 2: 0.2, 3: 0.2, 4: 0.2},
			expectedFreqs: map[int64]float64{0: 0.5, 1: 0.125, 2: 0.125, 3: 0.125, 4: 0.125},
			expectedError: nil,
		},
		{
			name:          "isolated nodes are never picked",
			table:         map[int64]float64{0: 1.0 / 3, 1: 1.0 / 3, 2: 0},
			expectedFreqs: map[int64]float64{0: 0.5, 1: 0.5, 2: 0},
			expectedError: nil,
		},
		{
			name:          "all isolated, uniform",
			table:         map[int64]float64{0: 0, 1: 0},
			expectedFreqs: map[int64]float64{0: 0.5, 1: 0.5},
			expectedError: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			start, err := NewDegreeStart(test.table)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("NewDegreeStart(): expected %v, got %v", test.expectedError, err)
			}

			if err != nil {
				return
			}

			rng := rand.New(rand.NewSource(42))
			counts := make(map[int64]int)
			for i := 0; i < draws; i++ {
				counts[start.Pick(rng)]++
			}

			for nodeID, expected := range test.expectedFreqs {
				freq := float64(counts[nodeID]) / draws
				if expected == 0 && counts[nodeID] != 0 {
					t.Errorf("Pick(): node %d has zero weight but was picked %d times", nodeID, counts[nodeID])
				}

				if math.Abs(freq-expected) > 0.01 {
					t.Errorf("Pick(): expected frequency %v for node %d, got %v", expected, nodeID, freq)
				}
			}
		})
	}
}

func TestDeltas(t *testing.T) {
	deltas := Deltas{}
	deltas.AddWeight(models.NewEdge(0, 1), 0.5)
	deltas.AddWeight(models.NewEdge(1, 0), 0.25)

	other := Deltas{models.NewEdge(1, 2): 1}
	deltas.Merge(other)

	expectedDeltas := Deltas{models.NewEdge(0, 1): 0.75, models.NewEdge(1, 2): 1}
	if !reflect.DeepEqual(deltas, expectedDeltas) {
		t.Errorf("Merge(): expected %v, got %v", expectedDeltas, deltas)
	}

	// merging leaves other untouched
	if !reflect.DeepEqual(other, Deltas{models.NewEdge(1, 2): 1}) {
		t.Errorf("Merge(): expected other to be unchanged, got %v", other)
	}

	if err := deltas.ApplyTo(nil); !errors.Is(err, ErrNilAccumulator) {
		t.Errorf("ApplyTo(): expected %v, got %v", ErrNilAccumulator, err)
	}

	G := graph.SetupGraph("triangle")
	if err := deltas.ApplyTo(G); err != nil {
		t.Fatalf("ApplyTo(): expected nil, got %v", err)
	}

	expected := models.CentralityMap{
		models.NewEdge(0, 1): 0.75,
		models.NewEdge(1, 2): 1,
		models.NewEdge(0, 2): 0,
	}
	got, _ := models.Snapshot(G)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ApplyTo(): expected %v, got %v", expected, got)
	}

	missing := Deltas{models.NewEdge(5, 6): 1}
	if err := missing.ApplyTo(G); !errors.Is(err, models.ErrEdgeNotFound) {
		t.Errorf("ApplyTo(): expected %v, got %v", models.ErrEdgeNotFound, err)
	}
}

func TestWalkNodes(t *testing.T) {
	walk := Walk{Start: 2, Edges: []models.Edge{{U: 1, V: 2}, {U: 0, V: 1}, {U: 0, V: 3}}}
	nodes, err := walk.Nodes()
	if err != nil {
		t.Fatalf("Nodes(): expected nil, got %v", err)
	}

	expected := []int64{2, 1, 0, 3}
	if !reflect.DeepEqual(nodes, expected) {
		t.Errorf("Nodes(): expected %v, got %v", expected, nodes)
	}

	broken := Walk{Start: 2, Edges: []models.Edge{{U: 0, V: 1}}}
	if _, err := broken.Nodes(); !errors.Is(err, models.ErrNodeNotInEdge) {
		t.Errorf("Nodes(): expected %v, got %v", models.ErrNodeNotInEdge, err)
	}
}
