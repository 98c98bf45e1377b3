package redisutils

import (
	"errors"
	"testing"

	"github.com/vertex-lab/kpath/pkg/models"
)

func TestFormatEdge(t *testing.T) {
	testCases := []struct {
		name           string
		edge           models.Edge
		expectedString string
	}{
		{name: "small IDs", edge: models.Edge{U: 0, V: 1}, expectedString: "0,1"},
		{name: "large IDs", edge: models.Edge{U: 69, V: 4200000000}, expectedString: "69,4200000000"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if str := FormatEdge(test.edge); str != test.expectedString {
				t.Errorf("FormatEdge(): expected %v, got %v", test.expectedString, str)
			}
		})
	}
}

func TestParseEdge(t *testing.T) {
	testCases := []struct {
		name          string
		strEdge       string
		expectedEdge  models.Edge
		expectedError bool
	}{
		{name: "empty string", strEdge: "", expectedError: true},
		{name: "missing comma", strEdge: "01", expectedError: true},
		{name: "not a number", strEdge: "0,x", expectedError: true},
		{name: "self-loop", strEdge: "3,3", expectedError: true},
		{name: "canonical", strEdge: "0,1", expectedEdge: models.Edge{U: 0, V: 1}},
		{name: "reversed", strEdge: "7,2", expectedEdge: models.Edge{U: 2, V: 7}},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			edge, err := ParseEdge(test.strEdge)
			if (err != nil) != test.expectedError {
				t.Fatalf("ParseEdge(): expected error %v, got %v", test.expectedError, err)
			}

			if edge != test.expectedEdge {
				t.Errorf("ParseEdge(): expected %v, got %v", test.expectedEdge, edge)
			}
		})
	}

	t.Run("self-loop sentinel", func(t *testing.T) {
		if _, err := ParseEdge("3,3"); !errors.Is(err, models.ErrSelfLoop) {
			t.Errorf("ParseEdge(): expected %v, got %v", models.ErrSelfLoop, err)
		}
	})
}
