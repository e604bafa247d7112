package frost

import (
	"time"

	"frost-depth/internal/modberg"
	"frost-depth/internal/types"
)

// FrostEstimate is the top-level domain model: the inputs the estimate was
// computed from and the full ModBerg result.
type FrostEstimate struct {
	Timestamp time.Time
	// Coordinates is set when the mean annual temperature was resolved
	// from the climate provider, nil when it was supplied directly.
	Coordinates *types.Coords
	Soil        types.SoilProperties
	Climate     types.ClimateProperties
	Result      modberg.Estimate
}
