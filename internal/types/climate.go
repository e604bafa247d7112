package types

import "fmt"

// DefaultFreezingTemp is the freezing point of water in °F.
const DefaultFreezingTemp = 32.0

// ClimateProperties are the immutable climate inputs to the ModBerg
// computation.
type ClimateProperties struct {
	// MeanAnnualTemp is the mean annual ground or surface temperature.
	MeanAnnualTemp Temperature
	// FreezingTemp is the freezing temperature, 32 °F in most cases.
	FreezingTemp Temperature
	// FreezingIndex is the surface freezing (or thawing) index in
	// °F·days, the cumulative degree-days below freezing for the season.
	FreezingIndex float64
	// SeasonDays is the length of the freezing (or thawing) season in days.
	SeasonDays float64
}

// NewClimateProperties builds climate inputs with the standard 32 °F
// freezing temperature. Override FreezingTemp directly for other cases.
func NewClimateProperties(meanAnnualTempF, freezingIndex, seasonDays float64) ClimateProperties {
	return ClimateProperties{
		MeanAnnualTemp: NewTemperatureFromFahrenheit(meanAnnualTempF),
		FreezingTemp:   NewTemperatureFromFahrenheit(DefaultFreezingTemp),
		FreezingIndex:  freezingIndex,
		SeasonDays:     seasonDays,
	}
}

// Validate fails fast on climate inputs that would divide by zero or flip
// the sign of a radicand downstream.
func (c ClimateProperties) Validate() error {
	if c.FreezingIndex <= 0 {
		return fmt.Errorf("freezing index must be positive, got %g: %w", c.FreezingIndex, ErrInvalidInput)
	}
	if c.SeasonDays <= 0 {
		return fmt.Errorf("freezing season duration must be positive, got %g: %w", c.SeasonDays, ErrInvalidInput)
	}
	return nil
}
