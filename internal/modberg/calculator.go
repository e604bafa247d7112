package modberg

import (
	"fmt"

	"frost-depth/internal/types"
)

// PrecisionNone disables the reference two-decimal rounding of λ for
// callers that want the full-precision coefficient.
const PrecisionNone = -1

// Calculator bundles the physical constants of the ModBerg computation.
// The zero value is not useful; use NewCalculator for the reference
// constants.
type Calculator struct {
	// LatentHeatOfWater is the gravimetric latent heat of fusion of water
	// in BTU/lb.
	LatentHeatOfWater float64
	// SolidsSpecificHeat is the specific heat of the soil solids.
	SolidsSpecificHeat float64
	// LambdaPrecision is the number of decimal places λ is rounded to
	// before it enters the depth formula. The reference methodology uses 2;
	// PrecisionNone disables rounding.
	LambdaPrecision int
}

// NewCalculator returns a calculator with the UFC 3-130-06 reference
// constants.
func NewCalculator() Calculator {
	return Calculator{
		LatentHeatOfWater:  GravimetricLatentHeatOfWater,
		SolidsSpecificHeat: DefaultSolidsSpecificHeat,
		LambdaPrecision:    referencePrecision,
	}
}

// Estimate holds the frost depth together with every intermediate quantity
// of the computation, mirroring a reference worksheet line by line.
type Estimate struct {
	// VolumetricLatentHeat is L in BTU/ft³.
	VolumetricLatentHeat float64
	// VolumetricSpecificHeat is c in BTU/(ft³·°F).
	VolumetricSpecificHeat float64
	// ThermalRatio is the dimensionless α.
	ThermalRatio float64
	// FusionParameter is the dimensionless μ.
	FusionParameter float64
	// CorrectionCoefficient is λ, in (0, 1].
	CorrectionCoefficient float64
	// Depth is the frost penetration depth.
	Depth types.FrostDepth
}

// Compute runs the full ModBerg sequence: validate inputs, derive L and c,
// then α and μ, then λ, then the depth. A single deterministic pass with no
// partial results; any invalid input fails fast with types.ErrInvalidInput.
func (calc Calculator) Compute(soil types.SoilProperties, climate types.ClimateProperties) (*Estimate, error) {
	if err := soil.Validate(); err != nil {
		return nil, fmt.Errorf("soil properties: %w", err)
	}
	if err := climate.Validate(); err != nil {
		return nil, fmt.Errorf("climate properties: %w", err)
	}

	latentHeat, err := VolumetricLatentHeat(calc.LatentHeatOfWater, soil.DryDensity, soil.WaterContentPct)
	if err != nil {
		return nil, fmt.Errorf("volumetric latent heat: %w", err)
	}

	specificHeat, err := VolumetricSpecificHeat(calc.SolidsSpecificHeat, soil.DryDensity, soil.WaterContentPct, soil.State)
	if err != nil {
		return nil, fmt.Errorf("volumetric specific heat: %w", err)
	}

	alpha, err := ThermalRatio(climate.MeanAnnualTemp.Fahrenheit, climate.FreezingTemp.Fahrenheit, climate.SeasonDays, climate.FreezingIndex)
	if err != nil {
		return nil, fmt.Errorf("thermal ratio: %w", err)
	}

	mu, err := FusionParameter(climate.FreezingIndex, climate.SeasonDays, specificHeat, latentHeat)
	if err != nil {
		return nil, fmt.Errorf("fusion parameter: %w", err)
	}

	lambda, err := correctionCoefficient(mu, alpha, calc.LambdaPrecision)
	if err != nil {
		return nil, fmt.Errorf("correction coefficient: %w", err)
	}

	depthFeet, err := DepthOfFreezing(lambda, soil.ThermalConductivity, climate.FreezingIndex, latentHeat)
	if err != nil {
		return nil, fmt.Errorf("depth of freezing: %w", err)
	}

	return &Estimate{
		VolumetricLatentHeat:   latentHeat,
		VolumetricSpecificHeat: specificHeat,
		ThermalRatio:           alpha,
		FusionParameter:        mu,
		CorrectionCoefficient:  lambda,
		Depth:                  types.NewFrostDepthFromFeet(depthFeet),
	}, nil
}
