package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewEdge(t *testing.T) {
	testCases := []struct {
		name         string
		u, v         int64
		expectedEdge Edge
	}{
		{
			name:         "already ordered",
			u:            1,
			v:            2,
			expectedEdge: Edge{U: 1, V: 2},
		},
		{
			name:         "reversed",
			u:            7,
			v:            3,
			expectedEdge: Edge{U: 3, V: 7},
		},
		{
			name:         "negative IDs",
			u:            0,
			v:            -5,
			expectedEdge: Edge{U: -5, V: 0},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			edge := NewEdge(test.u, test.v)
			if edge != test.expectedEdge {
				t.Errorf("NewEdge(): expected %v, got %v", test.expectedEdge, edge)
			}

			if NewEdge(test.v, test.u) != edge {
				t.Errorf("NewEdge(): expected {u,v} and {v,u} to be the same edge")
			}
		})
	}
}

func TestOther(t *testing.T) {
	testCases := []struct {
		name          string
		nodeID        int64
		expectedOther int64
		expectedError error
	}{
		{
			name:          "from U",
			nodeID:        1,
			expectedOther: 4,
			expectedError: nil,
		},
		{
			name:          "from V",
			nodeID:        4,
			expectedOther: 1,
			expectedError: nil,
		},
		{
			name:          "not an endpoint",
			nodeID:        2,
			expectedOther: 0,
			expectedError: ErrNodeNotInEdge,
		},
	}

	edge := NewEdge(4, 1)
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			other, err := edge.Other(test.nodeID)
			if !errors.Is(err, test.expectedError) {
				t.Fatalf("Other(): expected %v, got %v", test.expectedError, err)
			}

			if other != test.expectedOther {
				t.Errorf("Other(): expected %v, got %v", test.expectedOther, other)
			}
		})
	}
}

func TestEdgeString(t *testing.T) {
	if got := NewEdge(3, 0).String(); got != "0, 3" {
		t.Errorf("String(): expected %v, got %v", "0, 3", got)
	}
}

func TestSorted(t *testing.T) {
	testCases := []struct {
		name           string
		centrality     CentralityMap
		expectedScores []EdgeScore
	}{
		{
			name:           "empty",
			centrality:     CentralityMap{},
			expectedScores: []EdgeScore{},
		},
		{
			name: "descending score",
			centrality: CentralityMap{
				NewEdge(0, 1): 0.1,
				NewEdge(1, 2): 0.7,
				NewEdge(2, 3): 0.3,
			},
			expectedScores: []EdgeScore{
				{Edge: NewEdge(1, 2), Score: 0.7},
				{Edge: NewEdge(2, 3), Score: 0.3},
				{Edge: NewEdge(0, 1), Score: 0.1},
			},
		},
		{
			name: "ties broken by edge",
			centrality: CentralityMap{
				NewEdge(2, 3): 0.5,
				NewEdge(0, 3): 0.5,
				NewEdge(0, 1): 0.5,
			},
			expectedScores: []EdgeScore{
				{Edge: NewEdge(0, 1), Score: 0.5},
				{Edge: NewEdge(0, 3), Score: 0.5},
				{Edge: NewEdge(2, 3), Score: 0.5},
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			scores := Sorted(test.centrality)
			if !reflect.DeepEqual(scores, test.expectedScores) {
				t.Errorf("Sorted(): expected %v, got %v", test.expectedScores, scores)
			}
		})
	}
}

func TestSnapshotNil(t *testing.T) {
	if _, err := Snapshot(nil); !errors.Is(err, ErrNilGraph) {
		t.Errorf("Snapshot(): expected %v, got %v", ErrNilGraph, err)
	}
}
