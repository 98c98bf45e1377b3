package centrality

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vertex-lab/kpath/pkg/models"
)

// Variant identifies one of the two centrality measures.
type Variant string

const (
	UniformAdditive Variant = "erw"
	Weighted        Variant = "werw"
)

// ParseVariant() returns the Variant with the specified name. It accepts
// "erw", "werw" and their long forms "erw-kpath" and "werw-kpath".
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "erw", "erw-kpath":
		return UniformAdditive, nil
	case "werw", "werw-kpath":
		return Weighted, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrUnknownVariant, name)
	}
}

// Run() runs the specified variant on G.
func Run(G models.WeightedGraph, variant Variant, params Params, rng *rand.Rand) (Stats, error) {
	switch variant {
	case UniformAdditive:
		return ERW(G, params, rng)
	case Weighted:
		return WERW(G, params, rng)
	default:
		return Stats{}, fmt.Errorf("%w: %q", models.ErrUnknownVariant, variant)
	}
}
