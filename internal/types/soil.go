package types

import (
	"fmt"
	"strings"
)

// SoilState selects which moisture modifier is applied when computing the
// volumetric specific heat of the soil.
type SoilState int

const (
	// SoilStateAverage is the frozen/unfrozen average used when the state is
	// not known, the usual case for a full freezing season.
	SoilStateAverage SoilState = iota
	SoilStateFrozen
	SoilStateUnfrozen
)

var soilStateNames = map[SoilState]string{
	SoilStateAverage:  "average",
	SoilStateFrozen:   "frozen",
	SoilStateUnfrozen: "unfrozen",
}

func (s SoilState) String() string {
	if name, ok := soilStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", int(s))
}

// ParseSoilState normalizes a soil state string. Anything other than
// "frozen" or "unfrozen" falls back to the average state.
func ParseSoilState(s string) SoilState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "frozen":
		return SoilStateFrozen
	case "unfrozen":
		return SoilStateUnfrozen
	default:
		return SoilStateAverage
	}
}

// SoilProperties are the immutable soil inputs to the ModBerg computation.
type SoilProperties struct {
	// ThermalConductivity is the soil thermal conductivity in
	// BTU/(hr·ft·°F), averaged between frozen and unfrozen values.
	ThermalConductivity float64
	// DryDensity is the soil dry density in pounds per cubic foot.
	DryDensity float64
	// WaterContentPct is the gravimetric water content in percent.
	WaterContentPct float64
	// State selects the moisture modifier for the specific heat term.
	State SoilState
}

func NewSoilProperties(conductivity, dryDensity, waterContentPct float64, state SoilState) SoilProperties {
	return SoilProperties{
		ThermalConductivity: conductivity,
		DryDensity:          dryDensity,
		WaterContentPct:     waterContentPct,
		State:               state,
	}
}

// Validate fails fast on non-physical soil inputs.
func (s SoilProperties) Validate() error {
	if s.ThermalConductivity <= 0 {
		return fmt.Errorf("thermal conductivity must be positive, got %g: %w", s.ThermalConductivity, ErrInvalidInput)
	}
	if s.DryDensity <= 0 {
		return fmt.Errorf("dry density must be positive, got %g: %w", s.DryDensity, ErrInvalidInput)
	}
	if s.WaterContentPct < 0 {
		return fmt.Errorf("water content must be non-negative, got %g: %w", s.WaterContentPct, ErrInvalidInput)
	}
	return nil
}
