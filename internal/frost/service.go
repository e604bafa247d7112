package frost

import (
	"fmt"
	"log/slog"
	"time"

	"frost-depth/internal/config"
	"frost-depth/internal/modberg"
	"frost-depth/internal/providers/snap"
	"frost-depth/internal/types"
)

// MeanAnnualTempProvider resolves the mean annual ground temperature for a
// coordinate from a climate dataset.
type MeanAnnualTempProvider interface {
	GetMeanAnnualTemperature(latitude, longitude float64) (types.Temperature, error)
}

// Service computes frost depth estimates.
type Service interface {
	// Estimate computes the frost depth from fully specified inputs.
	Estimate(soil types.SoilProperties, climate types.ClimateProperties) (*FrostEstimate, error)
	// EstimateAt resolves the mean annual temperature for the coordinate
	// from the climate provider, then computes the frost depth. Any
	// MeanAnnualTemp already set on climate is ignored.
	EstimateAt(coords types.Coords, soil types.SoilProperties, climate types.ClimateProperties) (*FrostEstimate, error)
}

type frostService struct {
	matProvider MeanAnnualTempProvider
	calculator  modberg.Calculator
	logger      *slog.Logger
}

// NewFrostService creates a new frost service with a real SNAP client.
func NewFrostService(cfg *config.Config, logger *slog.Logger) Service {
	client := snap.NewClientWithBaseURL(logger, cfg.Snap.BaseURL, cfg.Snap.Era)
	return NewFrostServiceWithProvider(cfg, logger, client)
}

// NewFrostServiceWithProvider creates a new frost service with a custom
// climate provider. This is useful for testing with mock providers.
func NewFrostServiceWithProvider(cfg *config.Config, logger *slog.Logger, matProvider MeanAnnualTempProvider) Service {
	return &frostService{
		matProvider: matProvider,
		calculator: modberg.Calculator{
			LatentHeatOfWater:  cfg.ModBerg.LatentHeatWater,
			SolidsSpecificHeat: cfg.ModBerg.SolidsSpecificHeat,
			LambdaPrecision:    cfg.ModBerg.LambdaPrecision,
		},
		logger: logger.With("component", "frost-service"),
	}
}

func (s *frostService) Estimate(soil types.SoilProperties, climate types.ClimateProperties) (*FrostEstimate, error) {
	result, err := s.calculator.Compute(soil, climate)
	if err != nil {
		s.logger.Error("frost depth computation failed", "error", err)
		return nil, fmt.Errorf("failed to compute frost depth: %w", err)
	}

	s.logger.Debug("computed frost depth",
		"mean_annual_temp_f", climate.MeanAnnualTemp.Fahrenheit,
		"fusion_parameter", result.FusionParameter,
		"thermal_ratio", result.ThermalRatio,
		"correction_coefficient", result.CorrectionCoefficient,
		"depth_ft", result.Depth.Feet,
	)

	return &FrostEstimate{
		Timestamp: time.Now().UTC(),
		Soil:      soil,
		Climate:   climate,
		Result:    *result,
	}, nil
}

func (s *frostService) EstimateAt(coords types.Coords, soil types.SoilProperties, climate types.ClimateProperties) (*FrostEstimate, error) {
	mat, err := s.matProvider.GetMeanAnnualTemperature(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get mean annual temperature",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get mean annual temperature: %w", err)
	}

	s.logger.Debug("resolved mean annual temperature",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"fahrenheit", mat.Fahrenheit,
	)

	climate.MeanAnnualTemp = mat

	estimate, err := s.Estimate(soil, climate)
	if err != nil {
		return nil, err
	}
	estimate.Coordinates = &coords
	return estimate, nil
}
