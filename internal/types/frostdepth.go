package types

const FeetToMeters = 0.3048

type FrostDepth struct {
	Feet   float64
	Meters float64
}

func NewFrostDepthFromFeet(feet float64) FrostDepth {
	return FrostDepth{
		Feet:   feet,
		Meters: feet * FeetToMeters,
	}
}
