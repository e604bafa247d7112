package types

import (
	"errors"
	"math"
	"testing"
)

func TestTemperatureConversions(t *testing.T) {
	tests := []struct {
		name       string
		fahrenheit float64
		celsius    float64
	}{
		{
			name:       "freezing point",
			fahrenheit: 32,
			celsius:    0,
		},
		{
			name:       "boiling point",
			fahrenheit: 212,
			celsius:    100,
		},
		{
			name:       "below zero",
			fahrenheit: 28.4,
			celsius:    -2,
		},
		{
			name:       "scales meet",
			fahrenheit: -40,
			celsius:    -40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromF := NewTemperatureFromFahrenheit(tt.fahrenheit)
			if math.Abs(fromF.Celsius-tt.celsius) > 1e-9 {
				t.Errorf("NewTemperatureFromFahrenheit(%v).Celsius = %v, want %v", tt.fahrenheit, fromF.Celsius, tt.celsius)
			}

			fromC := NewTemperatureFromCelsius(tt.celsius)
			if math.Abs(fromC.Fahrenheit-tt.fahrenheit) > 1e-9 {
				t.Errorf("NewTemperatureFromCelsius(%v).Fahrenheit = %v, want %v", tt.celsius, fromC.Fahrenheit, tt.fahrenheit)
			}
		})
	}
}

func TestFrostDepthFromFeet(t *testing.T) {
	depth := NewFrostDepthFromFeet(3.29)
	if depth.Feet != 3.29 {
		t.Errorf("Feet = %v, want 3.29", depth.Feet)
	}
	if math.Abs(depth.Meters-3.29*FeetToMeters) > 1e-9 {
		t.Errorf("Meters = %v, want %v", depth.Meters, 3.29*FeetToMeters)
	}
}

func TestParseSoilState(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SoilState
	}{
		{
			name:     "frozen",
			input:    "frozen",
			expected: SoilStateFrozen,
		},
		{
			name:     "unfrozen mixed case",
			input:    " Unfrozen ",
			expected: SoilStateUnfrozen,
		},
		{
			name:     "average",
			input:    "average",
			expected: SoilStateAverage,
		},
		{
			name:     "unknown falls back to average",
			input:    "slushy",
			expected: SoilStateAverage,
		},
		{
			name:     "empty falls back to average",
			input:    "",
			expected: SoilStateAverage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSoilState(tt.input); got != tt.expected {
				t.Errorf("ParseSoilState(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSoilProperties_Validate(t *testing.T) {
	tests := []struct {
		name    string
		soil    SoilProperties
		wantErr bool
	}{
		{
			name: "valid soil",
			soil: NewSoilProperties(0.75, 100, 15, SoilStateAverage),
		},
		{
			name: "dry soil is valid here",
			soil: NewSoilProperties(0.75, 100, 0, SoilStateAverage),
		},
		{
			name:    "non-positive conductivity",
			soil:    NewSoilProperties(0, 100, 15, SoilStateAverage),
			wantErr: true,
		},
		{
			name:    "negative dry density",
			soil:    NewSoilProperties(0.75, -10, 15, SoilStateAverage),
			wantErr: true,
		},
		{
			name:    "negative water content",
			soil:    NewSoilProperties(0.75, 100, -1, SoilStateAverage),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.soil.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error %v is not ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestClimateProperties_Validate(t *testing.T) {
	tests := []struct {
		name    string
		climate ClimateProperties
		wantErr bool
	}{
		{
			name:    "valid climate",
			climate: NewClimateProperties(40, 750, 100),
		},
		{
			name:    "zero freezing index",
			climate: NewClimateProperties(40, 0, 100),
			wantErr: true,
		},
		{
			name:    "negative season duration",
			climate: NewClimateProperties(40, 750, -5),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.climate.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("error %v is not ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewClimateProperties_DefaultFreezingTemp(t *testing.T) {
	climate := NewClimateProperties(40, 750, 100)
	if climate.FreezingTemp.Fahrenheit != DefaultFreezingTemp {
		t.Errorf("FreezingTemp = %v °F, want %v", climate.FreezingTemp.Fahrenheit, DefaultFreezingTemp)
	}
}
