package mock

import (
	"context"

	"github.com/vertex-lab/kpath/pkg/models"
)

// SetupCS() returns a CentralityStore setup based on the CSType.
// It is used in tests across packages.
func SetupCS(CSType string) *CentralityStore {
	switch CSType {
	case "nil":
		return nil

	case "empty":
		return NewCentralityStore()

	case "empty-run":
		CS := NewCentralityStore()
		CS.Save(context.Background(), models.Meta{Variant: "erw", Kappa: 3, Seed: 42}, models.CentralityMap{})
		return CS

	case "triangle":
		CS := NewCentralityStore()
		CS.Save(context.Background(), models.Meta{Variant: "erw", Kappa: 3, Rho: 3, Beta: 1.0 / 3.0, Seed: 42},
			models.CentralityMap{
				{U: 0, V: 1}: 0.5,
				{U: 1, V: 2}: 0.3,
				{U: 0, V: 2}: 0.2,
			})
		return CS

	default:
		return nil // Default to nil for unrecognized scenarios
	}
}
