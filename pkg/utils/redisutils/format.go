package redisutils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vertex-lab/kpath/pkg/models"
)

// FormatEdge() formats an edge into the string "u,v", ready to be stored in Redis.
func FormatEdge(edge models.Edge) string {
	return FormatID(edge.U) + "," + FormatID(edge.V)
}

// ParseEdge() parses the string "u,v" into a canonical edge.
func ParseEdge(strEdge string) (models.Edge, error) {
	strU, strV, found := strings.Cut(strEdge, ",")
	if !found {
		return models.Edge{}, fmt.Errorf("unexpected edge format: %q", strEdge)
	}

	u, err := ParseID(strU)
	if err != nil {
		return models.Edge{}, err
	}

	v, err := ParseID(strV)
	if err != nil {
		return models.Edge{}, err
	}

	if u == v {
		return models.Edge{}, fmt.Errorf("%w: %q", models.ErrSelfLoop, strEdge)
	}

	return models.NewEdge(u, v), nil
}

// FormatID() formats a nodeID into a string
func FormatID(ID int64) string {
	return strconv.FormatInt(ID, 10)
}

// ParseID() parses a nodeID from the specified string
func ParseID(strVal string) (int64, error) {
	return strconv.ParseInt(strVal, 10, 64)
}

// ParseFloat64() parses a float64 from the specified string
func ParseFloat64(strVal string) (float64, error) {
	return strconv.ParseFloat(strVal, 64)
}
