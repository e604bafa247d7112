package modberg

import (
	"errors"
	"math"
	"testing"

	"frost-depth/internal/types"
)

// Worked example in the UFC 3-130-06 worksheet style: 100 pcf soil at 15%
// water content, k = 0.75 BTU/(hr·ft·°F), MAT 40 °F, 750 °F·days over a
// 100-day season.
func TestCalculator_Compute(t *testing.T) {
	calc := NewCalculator()

	soil := types.NewSoilProperties(0.75, 100, 15, types.SoilStateAverage)
	climate := types.NewClimateProperties(40, 750, 100)

	estimate, err := calc.Compute(soil, climate)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	if estimate.VolumetricLatentHeat != 2160 {
		t.Errorf("VolumetricLatentHeat = %v, want 2160", estimate.VolumetricLatentHeat)
	}
	if estimate.VolumetricSpecificHeat != 28.25 {
		t.Errorf("VolumetricSpecificHeat = %v, want 28.25", estimate.VolumetricSpecificHeat)
	}
	if estimate.ThermalRatio != 1.07 {
		t.Errorf("ThermalRatio = %v, want 1.07", estimate.ThermalRatio)
	}
	if estimate.FusionParameter != 0.10 {
		t.Errorf("FusionParameter = %v, want 0.10", estimate.FusionParameter)
	}
	if estimate.CorrectionCoefficient != 0.93 {
		t.Errorf("CorrectionCoefficient = %v, want 0.93", estimate.CorrectionCoefficient)
	}

	// X = 0.93 · √(48·0.75·750/2160) = 0.93 · √12.5 ≈ 3.29 ft
	if math.Abs(estimate.Depth.Feet-3.29) > 0.005 {
		t.Errorf("Depth.Feet = %v, want ≈3.29", estimate.Depth.Feet)
	}
	if math.Abs(estimate.Depth.Meters-estimate.Depth.Feet*types.FeetToMeters) > 1e-9 {
		t.Errorf("Depth.Meters = %v inconsistent with Depth.Feet = %v", estimate.Depth.Meters, estimate.Depth.Feet)
	}
}

func TestCalculator_Compute_FullPrecisionLambda(t *testing.T) {
	calc := NewCalculator()
	calc.LambdaPrecision = PrecisionNone

	soil := types.NewSoilProperties(0.75, 100, 15, types.SoilStateAverage)
	climate := types.NewClimateProperties(40, 750, 100)

	estimate, err := calc.Compute(soil, climate)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	// λ = 1/√(1 + 0.10·(1.07 + 0.5)) without the reference rounding
	expected := 1 / math.Sqrt(1+0.10*(1.07+0.5))
	if math.Abs(estimate.CorrectionCoefficient-expected) > 1e-12 {
		t.Errorf("CorrectionCoefficient = %v, want %v", estimate.CorrectionCoefficient, expected)
	}
	if estimate.CorrectionCoefficient == 0.93 {
		t.Error("CorrectionCoefficient still carries the 2-decimal rounding")
	}
}

func TestCalculator_Compute_InvalidInputs(t *testing.T) {
	calc := NewCalculator()

	validSoil := types.NewSoilProperties(0.75, 100, 15, types.SoilStateAverage)
	validClimate := types.NewClimateProperties(40, 750, 100)

	tests := []struct {
		name    string
		soil    types.SoilProperties
		climate types.ClimateProperties
	}{
		{
			name:    "negative dry density",
			soil:    types.NewSoilProperties(0.75, -100, 15, types.SoilStateAverage),
			climate: validClimate,
		},
		{
			name:    "zero thermal conductivity",
			soil:    types.NewSoilProperties(0, 100, 15, types.SoilStateAverage),
			climate: validClimate,
		},
		{
			name:    "negative water content",
			soil:    types.NewSoilProperties(0.75, 100, -15, types.SoilStateAverage),
			climate: validClimate,
		},
		{
			name:    "zero freezing index",
			soil:    validSoil,
			climate: types.NewClimateProperties(40, 0, 100),
		},
		{
			name:    "negative season duration",
			soil:    validSoil,
			climate: types.NewClimateProperties(40, 750, -1),
		},
		{
			name:    "dry soil has no latent heat to overcome",
			soil:    types.NewSoilProperties(0.75, 100, 0, types.SoilStateAverage),
			climate: validClimate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			estimate, err := calc.Compute(tt.soil, tt.climate)
			if err == nil {
				t.Fatalf("expected error, got estimate %+v", estimate)
			}
			if !errors.Is(err, types.ErrInvalidInput) {
				t.Errorf("error %v is not ErrInvalidInput", err)
			}
		})
	}
}
