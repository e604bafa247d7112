// Package modberg implements the modified Berggren (ModBerg) closed-form
// approximation of frost penetration depth, following the UFC 3-130-06
// design manual. All functions are pure and safe for concurrent use.
//
// Units are the customary ones of the reference: BTU, feet, pounds, °F,
// degree-days. Intermediate quantities are rounded to two decimal places
// where the reference worksheets do, so results line up with the published
// tables.
package modberg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"frost-depth/internal/types"
)

const (
	// GravimetricLatentHeatOfWater is the latent heat of fusion of water in
	// BTU per pound.
	GravimetricLatentHeatOfWater = 144.0

	// DefaultSolidsSpecificHeat is the specific heat of soil solids,
	// 0.17 for most soils.
	DefaultSolidsSpecificHeat = 0.17

	// stefanHours converts the degree-day freezing index against an hourly
	// conductivity: 2 * 24 hr/day in the Stefan solution.
	stefanHours = 48.0

	// referencePrecision is the decimal precision of the UFC worksheets.
	referencePrecision = 2
)

// moistureModifiers weight the water-content term of the volumetric
// specific heat: ice holds roughly half the specific heat of liquid water.
var moistureModifiers = map[types.SoilState]float64{
	types.SoilStateFrozen:   0.5,
	types.SoilStateUnfrozen: 1.0,
	types.SoilStateAverage:  0.75,
}

// VolumetricLatentHeat computes L, the heat required to freeze all the pore
// water in a unit volume of soil, in BTU per cubic foot.
//
// latentHeatWater is the gravimetric latent heat of fusion of water
// (BTU/lb, 144 in most cases), dryDensity the soil dry density (lb/ft³),
// waterContentPct the water content in percent.
func VolumetricLatentHeat(latentHeatWater, dryDensity, waterContentPct float64) (float64, error) {
	if latentHeatWater <= 0 {
		return 0, fmt.Errorf("latent heat of water must be positive, got %g: %w", latentHeatWater, types.ErrInvalidInput)
	}
	if dryDensity <= 0 {
		return 0, fmt.Errorf("dry density must be positive, got %g: %w", dryDensity, types.ErrInvalidInput)
	}
	if waterContentPct < 0 {
		return 0, fmt.Errorf("water content must be non-negative, got %g: %w", waterContentPct, types.ErrInvalidInput)
	}
	return latentHeatWater * dryDensity * (waterContentPct / 100), nil
}

// VolumetricSpecificHeat computes c, the heat required to change the
// temperature of a unit volume of soil by one °F, in BTU/(ft³·°F), rounded
// to the reference precision.
//
// solidsSpecificHeat is the specific heat of the soil solids (0.17 for most
// soils); state selects the frozen/unfrozen moisture modifier.
func VolumetricSpecificHeat(solidsSpecificHeat, dryDensity, waterContentPct float64, state types.SoilState) (float64, error) {
	if solidsSpecificHeat <= 0 {
		return 0, fmt.Errorf("solids specific heat must be positive, got %g: %w", solidsSpecificHeat, types.ErrInvalidInput)
	}
	if dryDensity <= 0 {
		return 0, fmt.Errorf("dry density must be positive, got %g: %w", dryDensity, types.ErrInvalidInput)
	}
	if waterContentPct < 0 {
		return 0, fmt.Errorf("water content must be non-negative, got %g: %w", waterContentPct, types.ErrInvalidInput)
	}
	modifier, ok := moistureModifiers[state]
	if !ok {
		modifier = moistureModifiers[types.SoilStateAverage]
	}
	c := dryDensity * (solidsSpecificHeat + modifier*(waterContentPct/100))
	return scalar.Round(c, referencePrecision), nil
}

// ThermalRatio computes α, the ratio of the initial temperature
// differential to the average surface temperature differential, rounded to
// the reference precision.
//
// meanAnnualTemp and freezingTemp are in °F, seasonDays in days,
// freezingIndex in °F·days.
func ThermalRatio(meanAnnualTemp, freezingTemp, seasonDays, freezingIndex float64) (float64, error) {
	if freezingIndex <= 0 {
		return 0, fmt.Errorf("freezing index must be positive, got %g: %w", freezingIndex, types.ErrInvalidInput)
	}
	if seasonDays <= 0 {
		return 0, fmt.Errorf("season duration must be positive, got %g: %w", seasonDays, types.ErrInvalidInput)
	}
	alpha := math.Abs(meanAnnualTemp-freezingTemp) * seasonDays / freezingIndex
	return scalar.Round(alpha, referencePrecision), nil
}

// FusionParameter computes μ, the dimensionless ratio of the sensible to
// latent heat of the freezing soil, rounded to the reference precision.
//
// volSpecificHeat and volLatentHeat are the volumetric quantities from
// VolumetricSpecificHeat and VolumetricLatentHeat.
func FusionParameter(freezingIndex, seasonDays, volSpecificHeat, volLatentHeat float64) (float64, error) {
	if freezingIndex <= 0 {
		return 0, fmt.Errorf("freezing index must be positive, got %g: %w", freezingIndex, types.ErrInvalidInput)
	}
	if seasonDays <= 0 {
		return 0, fmt.Errorf("season duration must be positive, got %g: %w", seasonDays, types.ErrInvalidInput)
	}
	if volLatentHeat <= 0 {
		return 0, fmt.Errorf("volumetric latent heat must be positive, got %g: %w", volLatentHeat, types.ErrInvalidInput)
	}
	mu := (freezingIndex / seasonDays) * (volSpecificHeat / volLatentHeat)
	return scalar.Round(mu, referencePrecision), nil
}

// CorrectionCoefficient computes λ, the empirical correction of the ideal
// Stefan solution, rounded to two decimal places per the reference:
//
//	λ = 1 / √(1 + μ·(α + 0.5))
//
// For non-negative μ and α the result is in (0, 1], equals 1 at μ=α=0, and
// is monotonically non-increasing in each argument.
func CorrectionCoefficient(mu, thermalRatio float64) (float64, error) {
	return correctionCoefficient(mu, thermalRatio, referencePrecision)
}

func correctionCoefficient(mu, thermalRatio float64, precision int) (float64, error) {
	if mu < 0 {
		return 0, fmt.Errorf("fusion parameter must be non-negative, got %g: %w", mu, types.ErrInvalidInput)
	}
	if thermalRatio < 0 {
		return 0, fmt.Errorf("thermal ratio must be non-negative, got %g: %w", thermalRatio, types.ErrInvalidInput)
	}
	radicand := 1 + mu*(thermalRatio+0.5)
	if radicand <= 0 {
		return 0, fmt.Errorf("non-positive radicand %g for mu=%g, thermal ratio=%g: %w", radicand, mu, thermalRatio, types.ErrInvalidInput)
	}
	lambda := 1 / math.Sqrt(radicand)
	if precision < 0 {
		return lambda, nil
	}
	return scalar.Round(lambda, precision), nil
}

// DepthOfFreezing computes the frost penetration depth in feet from the
// ModBerg closed form:
//
//	X = λ·√(48·k·nFI / L)
//
// conductivity k is in BTU/(hr·ft·°F), freezingIndex nFI in °F·days,
// volLatentHeat L in BTU/ft³.
func DepthOfFreezing(lambda, conductivity, freezingIndex, volLatentHeat float64) (float64, error) {
	if lambda <= 0 || lambda > 1 {
		return 0, fmt.Errorf("correction coefficient must be in (0, 1], got %g: %w", lambda, types.ErrInvalidInput)
	}
	if conductivity <= 0 {
		return 0, fmt.Errorf("thermal conductivity must be positive, got %g: %w", conductivity, types.ErrInvalidInput)
	}
	if freezingIndex <= 0 {
		return 0, fmt.Errorf("freezing index must be positive, got %g: %w", freezingIndex, types.ErrInvalidInput)
	}
	if volLatentHeat <= 0 {
		return 0, fmt.Errorf("volumetric latent heat must be positive, got %g: %w", volLatentHeat, types.ErrInvalidInput)
	}
	return lambda * math.Sqrt(stefanHours*conductivity*freezingIndex/volLatentHeat), nil
}
